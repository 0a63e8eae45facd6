package impl

import (
	"context"
	"testing"

	"orchard/internal/domain/entity"
	domainerrors "orchard/internal/domain/errors"
	"orchard/internal/domain/repository"
	mockRepo "orchard/internal/mocks/repository"
	mockSvc "orchard/internal/mocks/service"
	"orchard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	orderRepo      *mockRepo.MockOrderRepository
	customerRepo   *mockRepo.MockCustomerRepository
	addressRepo    *mockRepo.MockAddressRepository
	productRepo    *mockRepo.MockProductRepository
	storeRepo      *mockRepo.MockStoreRepository
	projectionRepo *mockRepo.MockOrderProjectionRepository
	publisher      *mockSvc.MockEventPublisher
	tokenService   *mockSvc.MockTokenService
	qrcodeService  *mockSvc.MockQRCodeService
}

func newOrderService(t *testing.T) (usecase.OrderUsecase, *orderServiceMocks) {
	m := &orderServiceMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		orderRepo:      mockRepo.NewMockOrderRepository(t),
		customerRepo:   mockRepo.NewMockCustomerRepository(t),
		addressRepo:    mockRepo.NewMockAddressRepository(t),
		productRepo:    mockRepo.NewMockProductRepository(t),
		storeRepo:      mockRepo.NewMockStoreRepository(t),
		projectionRepo: mockRepo.NewMockOrderProjectionRepository(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
		tokenService:   mockSvc.NewMockTokenService(t),
		qrcodeService:  mockSvc.NewMockQRCodeService(t),
	}

	service := NewOrderService(OrderServiceParams{
		TxManager:      m.txManager,
		OrderRepo:      m.orderRepo,
		CustomerRepo:   m.customerRepo,
		AddressRepo:    m.addressRepo,
		ProjectionRepo: m.projectionRepo,
		Publisher:      m.publisher,
		TokenService:   m.tokenService,
		QRCodeService:  m.qrcodeService,
		Config:         newTestConfig(),
		Logger:         testLogger(),
	})

	return service, m
}

func TestOrderService_CreateOrder_DeliveryWithFreeShipping(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	customer := newTestCustomer("+15551234567", "alice@example.com", "Alice")
	store := newTestStore("12")
	product := newTestProduct(1001, "Apple Pie", 29.99,
		entity.ProductOption{ID: uuid.New(), Name: "Large", PriceDelta: 10.00})

	expectTransaction(m.txManager, m.factory)
	m.factory.EXPECT().CustomerRepo().Return(m.customerRepo)
	m.factory.EXPECT().StoreRepo().Return(m.storeRepo)
	m.factory.EXPECT().ProductRepo().Return(m.productRepo)
	m.factory.EXPECT().OrderRepo().Return(m.orderRepo)
	m.factory.EXPECT().AddressRepo().Return(m.addressRepo)

	m.customerRepo.EXPECT().FindByPhone(ctx, "+15551234567").Return(customer, nil)
	m.storeRepo.EXPECT().FindDefault(ctx).Return(store, nil)
	m.productRepo.EXPECT().FindByCode(ctx, 1001).Return(product, nil)
	m.orderRepo.EXPECT().NextOrderSequence(ctx, store.ID).Return(42, nil)
	m.addressRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.RecipientAddress")).Return(nil)

	var createdOrder *entity.Order
	m.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			createdOrder = order
		}).
		Return(nil)

	m.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)
	m.projectionRepo.EXPECT().
		FindByOrderID(ctx, mock.Anything).
		Return(nil, repository.ErrProjectionNotFound)
	m.tokenService.EXPECT().
		GeneratePaymentToken(mock.Anything, 86.58, newTestConfig().Checkout.PaymentTokenTTL).
		Return("tok123", nil)
	m.qrcodeService.EXPECT().
		GeneratePaymentQR("https://pay.example.com/checkout?token=tok123").
		Return([]byte{0x89, 0x50}, nil)

	result, err := service.CreateOrder(ctx, &usecase.CreateOrderInput{
		CustomerPhone:   "+15551234567",
		FulfillmentType: "delivery",
		ScheduledDate:   "2025-03-01",
		Items: []usecase.OrderItemInput{
			{ProductCode: 1001, OptionName: "large", Quantity: 2},
		},
		DeliveryAddress: &usecase.DeliveryAddressInput{
			Street:  "1 Orchard Way",
			City:    "Austin",
			State:   "TX",
			ZipCode: "78701",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, createdOrder)

	// 2 x (29.99 + 10.00) = 79.98 subtotal; over the free shipping threshold.
	assert.Equal(t, "W1200000042-1", createdOrder.OrderNumber)
	assert.Equal(t, entity.OrderStatusPending, createdOrder.Status)
	assert.InDelta(t, 79.98, createdOrder.Subtotal, 0.001)
	assert.InDelta(t, 6.60, createdOrder.Tax, 0.001)
	assert.InDelta(t, 0.0, createdOrder.ShippingFee, 0.001)
	assert.InDelta(t, 86.58, createdOrder.Total, 0.001)
	assert.Equal(t, "Large", createdOrder.Items[0].OptionName)

	assert.False(t, result.FromProjection)
	assert.Equal(t, "W1200000042-1", result.Projection.OrderNumber)
	assert.Equal(t, "Alice", result.Projection.CustomerName)
	assert.Equal(t, "1 Orchard Way", result.Projection.DeliveryStreet)
	require.NotNil(t, result.Payment)
	assert.Equal(t, "https://pay.example.com/checkout?token=tok123", result.Payment.PaymentURL)
	assert.NotEmpty(t, result.Payment.QRCodePNG)
}

func TestOrderService_CreateOrder_ShippingFeeBelowThreshold(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	customer := newTestCustomer("+15550001111", "bob@example.com", "Bob")
	store := newTestStore("34")
	product := newTestProduct(2002, "Fruit Cup", 12.50)

	expectTransaction(m.txManager, m.factory)
	m.factory.EXPECT().CustomerRepo().Return(m.customerRepo)
	m.factory.EXPECT().StoreRepo().Return(m.storeRepo)
	m.factory.EXPECT().ProductRepo().Return(m.productRepo)
	m.factory.EXPECT().OrderRepo().Return(m.orderRepo)

	m.customerRepo.EXPECT().FindByPhone(ctx, "+15550001111").Return(customer, nil)
	m.storeRepo.EXPECT().FindDefault(ctx).Return(store, nil)
	m.productRepo.EXPECT().FindByCode(ctx, 2002).Return(product, nil)
	m.orderRepo.EXPECT().NextOrderSequence(ctx, store.ID).Return(7, nil)

	var createdOrder *entity.Order
	m.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			createdOrder = order
		}).
		Return(nil)

	m.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)
	m.projectionRepo.EXPECT().
		FindByOrderID(ctx, mock.Anything).
		Return(nil, repository.ErrProjectionNotFound)
	m.tokenService.EXPECT().
		GeneratePaymentToken(mock.Anything, mock.Anything, mock.Anything).
		Return("tok456", nil)
	m.qrcodeService.EXPECT().
		GeneratePaymentQR(mock.Anything).
		Return([]byte{0x89}, nil)

	_, err := service.CreateOrder(ctx, &usecase.CreateOrderInput{
		CustomerPhone:      "+15550001111",
		FulfillmentType:    "pickup",
		PickupCustomerName: "Bob",
		Items: []usecase.OrderItemInput{
			{ProductCode: 2002, Quantity: 2},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, createdOrder)

	// 2 x 12.50 = 25.00 subtotal; below the free shipping threshold.
	assert.InDelta(t, 25.00, createdOrder.Subtotal, 0.001)
	assert.InDelta(t, 2.06, createdOrder.Tax, 0.001)
	assert.InDelta(t, 9.99, createdOrder.ShippingFee, 0.001)
	assert.InDelta(t, 37.05, createdOrder.Total, 0.001)
	assert.Equal(t, "W3400000007-1", createdOrder.OrderNumber)
}

func TestOrderService_CreateOrder_ValidationErrors(t *testing.T) {
	service, _ := newOrderService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.CreateOrderInput
	}{
		{
			name:  "missing customer identity",
			input: &usecase.CreateOrderInput{Items: []usecase.OrderItemInput{{ProductCode: 1001, Quantity: 1}}},
		},
		{
			name:  "no items",
			input: &usecase.CreateOrderInput{CustomerPhone: "+15551234567"},
		},
		{
			name: "delivery without address",
			input: &usecase.CreateOrderInput{
				CustomerPhone:   "+15551234567",
				FulfillmentType: "delivery",
				Items:           []usecase.OrderItemInput{{ProductCode: 1001, Quantity: 1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateOrder(ctx, tt.input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestOrderService_UpdateOrder_PatchesOnlyProvidedFields(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	orderID := uuid.New()
	order := &entity.Order{
		ID:         orderID,
		CustomerID: uuid.New(),
		Status:     entity.OrderStatusConfirmed,
	}
	projection := &entity.OrderProjection{
		OrderID:       orderID,
		ScheduledDate: "2025-03-01",
	}

	expectTransaction(m.txManager, m.factory)
	m.factory.EXPECT().OrderRepo().Return(m.orderRepo)

	m.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	m.orderRepo.EXPECT().
		Patch(ctx, orderID, map[string]any{"scheduled_date": "2025-03-01"}).
		Return(nil)

	m.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)
	m.projectionRepo.EXPECT().FindByOrderID(ctx, orderID).Return(projection, nil)

	date := "2025-03-01"
	result, err := service.UpdateOrder(ctx, &usecase.UpdateOrderInput{
		OrderID: orderID,
		Updates: usecase.OrderUpdates{ScheduledDate: &date},
	})
	require.NoError(t, err)
	assert.True(t, result.FromProjection)
	assert.Equal(t, "2025-03-01", result.Projection.ScheduledDate)
}

func TestOrderService_UpdateOrder_RejectsShippedOrder(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	orderID := uuid.New()
	order := &entity.Order{
		ID:     orderID,
		Status: entity.OrderStatusShipped,
	}

	expectTransaction(m.txManager, m.factory)
	m.factory.EXPECT().OrderRepo().Return(m.orderRepo)
	m.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	instructions := "leave at door"
	_, err := service.UpdateOrder(ctx, &usecase.UpdateOrderInput{
		OrderID: orderID,
		Updates: usecase.OrderUpdates{SpecialInstructions: &instructions},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ORDER_NOT_MODIFIABLE", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "shipped")
}

func TestOrderService_UpdateOrder_AddressPatchWithoutLinkedAddress(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	orderID := uuid.New()
	order := &entity.Order{
		ID:     orderID,
		Status: entity.OrderStatusPending,
	}

	expectTransaction(m.txManager, m.factory)
	m.factory.EXPECT().OrderRepo().Return(m.orderRepo)
	m.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	street := "2 Elm St"
	_, err := service.UpdateOrder(ctx, &usecase.UpdateOrderInput{
		OrderID: orderID,
		Updates: usecase.OrderUpdates{
			DeliveryAddress: &usecase.DeliveryAddressUpdate{Street: &street},
		},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ADDRESS_NOT_LINKED", appErr.ErrorCode())
}

func TestOrderService_UpdateOrder_NotFound(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	orderID := uuid.New()

	expectTransaction(m.txManager, m.factory)
	m.factory.EXPECT().OrderRepo().Return(m.orderRepo)
	m.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	date := "2025-03-01"
	_, err := service.UpdateOrder(ctx, &usecase.UpdateOrderInput{
		OrderID: orderID,
		Updates: usecase.OrderUpdates{ScheduledDate: &date},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ORDER_NOT_FOUND", appErr.ErrorCode())
}

func TestOrderService_GetOrder_ByNumberWithProjection(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	projection := &entity.OrderProjection{
		OrderID:     uuid.New(),
		OrderNumber: "W1200000042-1",
	}
	m.projectionRepo.EXPECT().
		FindByOrderNumber(ctx, "W1200000042-1").
		Return(projection, nil)

	result, err := service.GetOrder(ctx, &usecase.OrderQuery{OrderNumber: "W1200000042-1"})
	require.NoError(t, err)
	assert.True(t, result.FromProjection)
	assert.Equal(t, "W1200000042-1", result.Projection.OrderNumber)
}

func TestOrderService_GetOrder_ByPhoneFallsBackToNormalized(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	customer := newTestCustomer("+15551234567", "alice@example.com", "Alice")
	order := &entity.Order{
		ID:          uuid.New(),
		OrderNumber: "W1200000099-1",
		CustomerID:  customer.ID,
		Status:      entity.OrderStatusConfirmed,
	}

	m.customerRepo.EXPECT().FindByPhone(ctx, "+15551234567").Return(customer, nil)
	m.projectionRepo.EXPECT().
		FindLatestByCustomer(ctx, customer.ID).
		Return(nil, repository.ErrProjectionNotFound)
	m.orderRepo.EXPECT().FindRecentByCustomer(ctx, customer.ID, 1).Return([]*entity.Order{order}, nil)
	m.projectionRepo.EXPECT().
		FindByOrderID(ctx, order.ID).
		Return(nil, repository.ErrProjectionNotFound)

	result, err := service.GetOrder(ctx, &usecase.OrderQuery{CustomerPhone: "+15551234567"})
	require.NoError(t, err)
	assert.False(t, result.FromProjection)
	assert.Equal(t, "W1200000099-1", result.Projection.OrderNumber)
	assert.Equal(t, "Alice", result.Projection.CustomerName)
}
