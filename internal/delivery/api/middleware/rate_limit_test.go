package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orchard/config"
	"orchard/internal/domain/entity"
	mockRepo "orchard/internal/mocks/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRateLimitMiddleware(t *testing.T, maxRequests int) (*RateLimitMiddleware, *mockRepo.MockRateLimitRepository) {
	repo := mockRepo.NewMockRateLimitRepository(t)
	cfg := &config.Config{
		RateLimit: &config.RateLimitConfig{
			Enabled:     true,
			MaxRequests: maxRequests,
			Window:      time.Minute,
		},
	}

	return NewRateLimitMiddleware(repo, cfg, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func serveLimited(m *RateLimitMiddleware) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Limit(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)

	return rec
}

func TestRateLimitMiddleware_UnderLimitPasses(t *testing.T) {
	m, repo := newRateLimitMiddleware(t, 5)

	repo.EXPECT().
		IncrementAndCount(mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(&entity.RateLimit{RequestCount: 3}, nil)

	rec := serveLimited(m)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitMiddleware_OverLimitRejected(t *testing.T) {
	m, repo := newRateLimitMiddleware(t, 5)

	repo.EXPECT().
		IncrementAndCount(mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(&entity.RateLimit{RequestCount: 6}, nil)

	rec := serveLimited(m)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "RATE_LIMIT_EXCEEDED")
}

func TestRateLimitMiddleware_CounterErrorFailsOpen(t *testing.T) {
	m, repo := newRateLimitMiddleware(t, 5)

	repo.EXPECT().
		IncrementAndCount(mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(nil, errors.New("connection reset"))

	rec := serveLimited(m)
	assert.Equal(t, http.StatusOK, rec.Code)
}
