package impl

import (
	"context"
	"testing"

	"orchard/internal/domain/entity"
	"orchard/internal/domain/repository"
	mockRepo "orchard/internal/mocks/repository"
	"orchard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type projectionServiceMocks struct {
	orderRepo      *mockRepo.MockOrderRepository
	customerRepo   *mockRepo.MockCustomerRepository
	addressRepo    *mockRepo.MockAddressRepository
	projectionRepo *mockRepo.MockOrderProjectionRepository
}

func newProjectionService(t *testing.T) (usecase.ProjectionUsecase, *projectionServiceMocks) {
	m := &projectionServiceMocks{
		orderRepo:      mockRepo.NewMockOrderRepository(t),
		customerRepo:   mockRepo.NewMockCustomerRepository(t),
		addressRepo:    mockRepo.NewMockAddressRepository(t),
		projectionRepo: mockRepo.NewMockOrderProjectionRepository(t),
	}

	service := NewProjectionService(ProjectionServiceParams{
		OrderRepo:      m.orderRepo,
		CustomerRepo:   m.customerRepo,
		AddressRepo:    m.addressRepo,
		ProjectionRepo: m.projectionRepo,
		Logger:         testLogger(),
	})

	return service, m
}

func TestProjectionService_RefreshOrderProjection_UpsertsDenormalizedRow(t *testing.T) {
	service, m := newProjectionService(t)
	ctx := context.Background()

	customer := newTestCustomer("+15551234567", "alice@example.com", "Alice")
	addressID := uuid.New()
	order := &entity.Order{
		ID:                 uuid.New(),
		OrderNumber:        "W1200000042-1",
		CustomerID:         customer.ID,
		Status:             entity.OrderStatusConfirmed,
		FulfillmentType:    entity.FulfillmentDelivery,
		RecipientAddressID: &addressID,
		Items: []entity.OrderItem{
			{ProductName: "Apple Pie", OptionName: "Large", Quantity: 2, UnitPrice: 25.99},
		},
		Subtotal: 51.98,
		Total:    66.26,
	}
	address := &entity.RecipientAddress{
		ID:      addressID,
		Street:  "123 Main St",
		City:    "Springfield",
		State:   "IL",
		ZipCode: "62704",
	}

	m.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	m.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	m.addressRepo.EXPECT().FindByID(ctx, addressID).Return(address, nil)

	var upserted *entity.OrderProjection
	m.projectionRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.OrderProjection")).
		Run(func(_ context.Context, projection *entity.OrderProjection) {
			upserted = projection
		}).
		Return(nil)

	err := service.RefreshOrderProjection(ctx, order.ID)
	require.NoError(t, err)

	require.NotNil(t, upserted)
	assert.Equal(t, order.ID, upserted.OrderID)
	assert.Equal(t, "W1200000042-1", upserted.OrderNumber)
	assert.Equal(t, "Alice", upserted.CustomerName)
	assert.Equal(t, "+15551234567", upserted.CustomerPhone)
	assert.Equal(t, "2x Apple Pie (Large)", upserted.ItemsSummary)
	assert.Equal(t, 1, upserted.ItemCount)
	assert.Equal(t, "123 Main St", upserted.DeliveryStreet)
	assert.Equal(t, "62704", upserted.DeliveryZipCode)
	assert.False(t, upserted.RefreshedAt.IsZero())
}

func TestProjectionService_RefreshOrderProjection_ToleratesMissingAddress(t *testing.T) {
	service, m := newProjectionService(t)
	ctx := context.Background()

	customer := newTestCustomer("+15551234567", "alice@example.com", "Alice")
	addressID := uuid.New()
	order := &entity.Order{
		ID:                 uuid.New(),
		CustomerID:         customer.ID,
		RecipientAddressID: &addressID,
	}

	m.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	m.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	m.addressRepo.EXPECT().FindByID(ctx, addressID).Return(nil, repository.ErrAddressNotFound)

	var upserted *entity.OrderProjection
	m.projectionRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.OrderProjection")).
		Run(func(_ context.Context, projection *entity.OrderProjection) {
			upserted = projection
		}).
		Return(nil)

	err := service.RefreshOrderProjection(ctx, order.ID)
	require.NoError(t, err)

	require.NotNil(t, upserted)
	assert.Empty(t, upserted.DeliveryStreet)
	assert.Equal(t, "Alice", upserted.CustomerName)
}

func TestProjectionService_RefreshOrderProjection_OrderLookupFails(t *testing.T) {
	service, m := newProjectionService(t)
	ctx := context.Background()
	orderID := uuid.New()

	m.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, errors.New("connection reset"))

	err := service.RefreshOrderProjection(ctx, orderID)
	assert.Error(t, err)
}

func TestProjectionService_RefreshCustomerProjections_RefreshesRecentOrders(t *testing.T) {
	service, m := newProjectionService(t)
	ctx := context.Background()

	customer := newTestCustomer("+15551234567", "alice@example.com", "Alice")
	orders := []*entity.Order{
		{ID: uuid.New(), CustomerID: customer.ID},
		{ID: uuid.New(), CustomerID: customer.ID},
	}

	m.orderRepo.EXPECT().FindRecentByCustomer(ctx, customer.ID, refreshOrderLimit).Return(orders, nil)
	m.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil).Times(2)

	upserts := 0
	m.projectionRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.OrderProjection")).
		Run(func(_ context.Context, _ *entity.OrderProjection) {
			upserts++
		}).
		Return(nil).
		Times(2)

	err := service.RefreshCustomerProjections(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, upserts)
}
