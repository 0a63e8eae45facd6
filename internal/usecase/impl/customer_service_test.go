package impl

import (
	"context"
	"strings"
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

type customerServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	customerRepo *mockRepo.MockCustomerRepository
	orderRepo    *mockRepo.MockOrderRepository
	publisher    *mockSvc.MockEventPublisher
}

func newCustomerService(t *testing.T) (usecase.CustomerUsecase, *customerServiceMocks) {
	m := &customerServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	service := NewCustomerService(CustomerServiceParams{
		TxManager:    m.txManager,
		CustomerRepo: m.customerRepo,
		OrderRepo:    m.orderRepo,
		Publisher:    m.publisher,
		Logger:       testLogger(),
	})

	return service, m
}

func TestCustomerService_EnsureCustomer_CreatesTempEmailRecord(t *testing.T) {
	service, m := newCustomerService(t)
	ctx := context.Background()

	m.customerRepo.EXPECT().
		FindByPhone(ctx, "+15551234567").
		Return(nil, repository.ErrCustomerNotFound)

	var created *entity.Customer
	m.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(_ context.Context, customer *entity.Customer) {
			created = customer
		}).
		Return(nil)

	result, err := service.EnsureCustomer(ctx, &usecase.EnsureCustomerInput{
		Phone:     "+15551234567",
		Name:      "Alice",
		SessionID: "vf-session-1",
	})
	require.NoError(t, err)
	assert.True(t, result.Created)
	require.NotNil(t, created)

	assert.True(t, strings.HasPrefix(created.Email, "chatbot_"))
	assert.True(t, created.IsTempEmail())
	assert.Equal(t, "+15551234567", created.Phone)
	assert.Equal(t, "vf-session-1", created.Preferences["session_id"])
}

func TestCustomerService_EnsureCustomer_FillsMissingFields(t *testing.T) {
	service, m := newCustomerService(t)
	ctx := context.Background()

	existing := newTestCustomer("+15551234567", "chatbot_1700000000000@temp.local", "")

	m.customerRepo.EXPECT().FindByPhone(ctx, "+15551234567").Return(existing, nil)
	m.customerRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(nil)

	result, err := service.EnsureCustomer(ctx, &usecase.EnsureCustomerInput{
		Phone: "+15551234567",
		Email: "alice@example.com",
		Name:  "Alice",
	})
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, "alice@example.com", result.Customer.Email)
	assert.Equal(t, "Alice", result.Customer.Name)
}

func TestCustomerService_EnsureCustomer_RequiresIdentifier(t *testing.T) {
	service, _ := newCustomerService(t)

	_, err := service.EnsureCustomer(context.Background(), &usecase.EnsureCustomerInput{Name: "Alice"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCustomerService_CheckMergeCompatibility_SameAccount(t *testing.T) {
	service, m := newCustomerService(t)
	ctx := context.Background()

	customer := newTestCustomer("+15551234567", "alice@example.com", "Alice")

	m.customerRepo.EXPECT().FindByPhone(ctx, "+15551234567").Return(customer, nil)
	m.customerRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(customer, nil)

	result, err := service.CheckMergeCompatibility(ctx, "+15551234567", "alice@example.com")
	require.NoError(t, err)
	assert.False(t, result.CanMerge)
	assert.Equal(t, usecase.MergeReasonSameAccount, result.Reason)
}

func TestCustomerService_CheckMergeCompatibility_NameMismatch(t *testing.T) {
	service, m := newCustomerService(t)
	ctx := context.Background()

	phoneCustomer := newTestCustomer("+15551234567", "chatbot_1700000000000@temp.local", "John Smith")
	emailCustomer := newTestCustomer("", "jane@example.com", "Jane Doe")

	m.customerRepo.EXPECT().FindByPhone(ctx, "+15551234567").Return(phoneCustomer, nil)
	m.customerRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(emailCustomer, nil)

	result, err := service.CheckMergeCompatibility(ctx, "+15551234567", "jane@example.com")
	require.NoError(t, err)
	assert.False(t, result.CanMerge)
	assert.Equal(t, usecase.MergeReasonNameMismatch, result.Reason)
}

func TestCustomerService_CheckMergeCompatibility_AuthSideWins(t *testing.T) {
	service, m := newCustomerService(t)
	ctx := context.Background()

	authID := uuid.New()
	phoneCustomer := newTestCustomer("+15551234567", "chatbot_1700000000000@temp.local", "Alice")
	phoneCustomer.AuthUserID = &authID
	emailCustomer := newTestCustomer("", "alice@example.com", "alice")

	m.customerRepo.EXPECT().FindByPhone(ctx, "+15551234567").Return(phoneCustomer, nil)
	m.customerRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(emailCustomer, nil)
	m.orderRepo.EXPECT().CountByCustomer(ctx, phoneCustomer.ID).Return(1, nil)
	m.orderRepo.EXPECT().CountByCustomer(ctx, emailCustomer.ID).Return(9, nil)

	result, err := service.CheckMergeCompatibility(ctx, "+15551234567", "alice@example.com")
	require.NoError(t, err)
	assert.True(t, result.CanMerge)
	assert.Equal(t, "phone", result.PrimaryAccount)
	assert.Equal(t, "phone_primary", result.MergeStrategy)
	assert.Equal(t, int64(10), result.TotalOrdersAfterMerge)
	assert.True(t, result.Accounts["phone"].HasAuth)
	assert.False(t, result.Accounts["email"].HasAuth)
}

func TestCustomerService_CheckMergeCompatibility_MoreOrdersWins(t *testing.T) {
	service, m := newCustomerService(t)
	ctx := context.Background()

	phoneCustomer := newTestCustomer("+15551234567", "chatbot_1700000000000@temp.local", "Alice")
	emailCustomer := newTestCustomer("", "alice@example.com", "Alice")

	m.customerRepo.EXPECT().FindByPhone(ctx, "+15551234567").Return(phoneCustomer, nil)
	m.customerRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(emailCustomer, nil)
	m.orderRepo.EXPECT().CountByCustomer(ctx, phoneCustomer.ID).Return(2, nil)
	m.orderRepo.EXPECT().CountByCustomer(ctx, emailCustomer.ID).Return(5, nil)

	result, err := service.CheckMergeCompatibility(ctx, "+15551234567", "alice@example.com")
	require.NoError(t, err)
	assert.True(t, result.CanMerge)
	assert.Equal(t, "email", result.PrimaryAccount)
	assert.Equal(t, "email_primary", result.MergeStrategy)
	assert.Equal(t, int64(7), result.TotalOrdersAfterMerge)
}

func TestCustomerService_CheckMergeCompatibility_PhoneNotFound(t *testing.T) {
	service, m := newCustomerService(t)
	ctx := context.Background()

	m.customerRepo.EXPECT().
		FindByPhone(ctx, "+15559999999").
		Return(nil, repository.ErrCustomerNotFound)

	_, err := service.CheckMergeCompatibility(ctx, "+15559999999", "alice@example.com")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CUSTOMER_NOT_FOUND", appErr.ErrorCode())
}

func TestCustomerService_MergeAccounts_PhonePrimary(t *testing.T) {
	service, m := newCustomerService(t)
	ctx := context.Background()

	authID := uuid.New()
	phoneCustomer := newTestCustomer("+15551234567", "chatbot_1700000000000@temp.local", "Alice")
	phoneCustomer.AuthUserID = &authID
	phoneCustomer.Allergies = []string{"Peanuts"}
	emailCustomer := newTestCustomer("", "alice@example.com", "Alice")
	emailCustomer.Allergies = []string{"peanuts", "Shellfish"}
	emailCustomer.DietaryRestrictions = []string{"Vegetarian"}

	m.customerRepo.EXPECT().FindByPhone(ctx, "+15551234567").Return(phoneCustomer, nil)
	m.customerRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(emailCustomer, nil)
	m.orderRepo.EXPECT().CountByCustomer(ctx, phoneCustomer.ID).Return(2, nil).Once()
	m.orderRepo.EXPECT().CountByCustomer(ctx, emailCustomer.ID).Return(3, nil).Once()

	expectTransaction(m.txManager, m.factory)
	m.factory.EXPECT().CustomerRepo().Return(m.customerRepo)
	m.factory.EXPECT().OrderRepo().Return(m.orderRepo)

	m.orderRepo.EXPECT().
		ReassignCustomer(ctx, emailCustomer.ID, phoneCustomer.ID).
		Return(3, nil)

	var archivedEmail string
	m.customerRepo.EXPECT().
		Patch(ctx, emailCustomer.ID, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, fields map[string]any) {
			archivedEmail, _ = fields["email"].(string)
		}).
		Return(nil)

	var mergedPrimary *entity.Customer
	m.customerRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(_ context.Context, customer *entity.Customer) {
			mergedPrimary = customer
		}).
		Return(nil)

	m.orderRepo.EXPECT().CountByCustomer(ctx, phoneCustomer.ID).Return(5, nil).Once()

	m.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	result, err := service.MergeAccounts(ctx, "+15551234567", "alice@example.com", "chatbot")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, phoneCustomer.ID, result.PrimaryAccountID)
	assert.Equal(t, emailCustomer.ID, result.SecondaryAccountID)
	assert.Equal(t, int64(3), result.OrdersTransferred)
	assert.Equal(t, int64(5), result.TotalOrders)
	assert.Equal(t, "phone_primary", result.MergeStrategy)

	// Secondary email archived but still embeds the original address.
	assert.True(t, strings.HasPrefix(archivedEmail, "archived_"+emailCustomer.ID.String()))
	assert.Contains(t, archivedEmail, "alice@example.com")

	// Allergy union is case-insensitive and order-independent.
	require.NotNil(t, mergedPrimary)
	assert.ElementsMatch(t, []string{"Peanuts", "Shellfish"}, mergedPrimary.Allergies)
	assert.ElementsMatch(t, []string{"Vegetarian"}, mergedPrimary.DietaryRestrictions)

	// The primary inherits the secondary's real email over its placeholder.
	assert.Equal(t, "alice@example.com", mergedPrimary.Email)
	assert.Contains(t, mergedPrimary.Preferences, "merge_audit")
}

func TestCustomerService_MergeAccounts_IncompatibleRejected(t *testing.T) {
	service, m := newCustomerService(t)
	ctx := context.Background()

	phoneCustomer := newTestCustomer("+15551234567", "chatbot_1700000000000@temp.local", "John Smith")
	emailCustomer := newTestCustomer("", "jane@example.com", "Jane Doe")

	m.customerRepo.EXPECT().FindByPhone(ctx, "+15551234567").Return(phoneCustomer, nil)
	m.customerRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(emailCustomer, nil)

	_, err := service.MergeAccounts(ctx, "+15551234567", "jane@example.com", "chatbot")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "MERGE_INCOMPATIBLE", appErr.ErrorCode())
	assert.Equal(t, usecase.MergeReasonNameMismatch, appErr.Details())
}

func TestCustomerService_GetCustomerOrders_DefaultLimit(t *testing.T) {
	service, m := newCustomerService(t)
	ctx := context.Background()

	customer := newTestCustomer("+15551234567", "alice@example.com", "Alice")
	orders := []*entity.Order{
		{ID: uuid.New(), OrderNumber: "W1200000002-1"},
		{ID: uuid.New(), OrderNumber: "W1200000001-1"},
	}

	m.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	m.orderRepo.EXPECT().FindRecentByCustomer(ctx, customer.ID, 5).Return(orders, nil)

	got, err := service.GetCustomerOrders(ctx, customer.ID, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
