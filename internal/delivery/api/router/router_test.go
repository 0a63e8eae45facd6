package router

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orchard/config"
	"orchard/internal/delivery/api/middleware"
	"orchard/internal/delivery/api/router/handler"
	"orchard/internal/delivery/api/validator"
	"orchard/internal/domain/entity"
	mockRepo "orchard/internal/mocks/repository"
	mockSvc "orchard/internal/mocks/service"
	"orchard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOrderUsecase records the update input it receives and returns a fixed
// confirmed-order read model.
type stubOrderUsecase struct {
	updateInput *usecase.UpdateOrderInput
}

func (s *stubOrderUsecase) CreateOrder(_ context.Context, _ *usecase.CreateOrderInput) (*usecase.OrderResult, error) {
	return nil, nil
}

func (s *stubOrderUsecase) UpdateOrder(_ context.Context, input *usecase.UpdateOrderInput) (*usecase.OrderResult, error) {
	s.updateInput = input

	return &usecase.OrderResult{
		Projection: &entity.OrderProjection{
			OrderNumber: "W1200000042-1",
			Status:      entity.OrderStatusConfirmed,
		},
		FromProjection: true,
	}, nil
}

func (s *stubOrderUsecase) GetOrder(_ context.Context, _ *usecase.OrderQuery) (*usecase.OrderResult, error) {
	return nil, nil
}

func newTestRouter(t *testing.T, orderUC usecase.OrderUsecase) *echo.Echo {
	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	r := NewRouter(RouterParams{
		OrderHandler:        handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: orderUC, Logger: logger}),
		CustomerHandler:     handler.NewCustomerHandler(handler.CustomerHandlerParams{Logger: logger}),
		CartHandler:         handler.NewCartHandler(handler.CartHandlerParams{Logger: logger}),
		ProfileHandler:      handler.NewProfileHandler(handler.ProfileHandlerParams{Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(mockSvc.NewMockTokenService(t), cfg),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(mockRepo.NewMockRateLimitRepository(t), cfg, logger),
		Config:              cfg,
	})
	r.RegisterRoutes(e)

	return e
}

func TestRouter_UpdateOrder_OrderSelectedInBody(t *testing.T) {
	stub := &stubOrderUsecase{}
	e := newTestRouter(t, stub)

	body := `{
		"orderId": "0198c5b6-0000-7000-8000-000000000001",
		"updates": {"scheduled_date": "2025-03-01"},
		"outputType": "streamlined"
	}`
	req := httptest.NewRequest(http.MethodPatch, "/api/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "W1200000042-1")

	require.NotNil(t, stub.updateInput)
	assert.Equal(t, "0198c5b6-0000-7000-8000-000000000001", stub.updateInput.OrderID.String())
	require.NotNil(t, stub.updateInput.Updates.ScheduledDate)
	assert.Equal(t, "2025-03-01", *stub.updateInput.Updates.ScheduledDate)
}

func TestRouter_UpdateOrder_MissingOrderID(t *testing.T) {
	stub := &stubOrderUsecase{}
	e := newTestRouter(t, stub)

	body := `{"updates": {"scheduled_date": "2025-03-01"}}`
	req := httptest.NewRequest(http.MethodPatch, "/api/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Nil(t, stub.updateInput)
}
