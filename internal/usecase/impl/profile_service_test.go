package impl

import (
	"context"
	"testing"

	domainerrors "orchard/internal/domain/errors"
	"orchard/internal/domain/repository"
	mockRepo "orchard/internal/mocks/repository"
	"orchard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileService(t *testing.T) (usecase.ProfileUsecase, *mockRepo.MockCustomerRepository) {
	customerRepo := mockRepo.NewMockCustomerRepository(t)

	service := NewProfileService(ProfileServiceParams{
		CustomerRepo: customerRepo,
	})

	return service, customerRepo
}

func TestProfileService_GetProfile(t *testing.T) {
	service, customerRepo := newProfileService(t)
	ctx := context.Background()

	customer := newTestCustomer("+15551234567", "alice@example.com", "Alice")

	customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	got, err := service.GetProfile(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, got.ID)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	service, customerRepo := newProfileService(t)
	ctx := context.Background()

	missingID := uuid.New()
	customerRepo.EXPECT().FindByID(ctx, missingID).Return(nil, repository.ErrCustomerNotFound)

	_, err := service.GetProfile(ctx, missingID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CUSTOMER_NOT_FOUND", appErr.ErrorCode())
}

func TestProfileService_UpdateProfile_PatchesFields(t *testing.T) {
	service, customerRepo := newProfileService(t)
	ctx := context.Background()

	customer := newTestCustomer("+15551234567", "alice@example.com", "Alice")
	customer.Allergies = []string{"Peanuts"}

	customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	customerRepo.EXPECT().Update(ctx, customer).Return(nil)

	name := "Alice Chen"
	got, err := service.UpdateProfile(ctx, customer.ID, &usecase.UpdateProfileInput{
		Name:      &name,
		Allergies: []string{"peanuts", "Peanuts", "Shellfish"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice Chen", got.Name)
	assert.ElementsMatch(t, []string{"peanuts", "Shellfish"}, got.Allergies)
	// Untouched fields survive the patch.
	assert.Equal(t, "+15551234567", got.Phone)
}

func TestProfileService_UpdateProfile_EmptyInput(t *testing.T) {
	service, _ := newProfileService(t)

	_, err := service.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestProfileService_UpdateProfile_DuplicatePhone(t *testing.T) {
	service, customerRepo := newProfileService(t)
	ctx := context.Background()

	customer := newTestCustomer("+15551234567", "alice@example.com", "Alice")

	customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	customerRepo.EXPECT().Update(ctx, customer).Return(repository.ErrDuplicateCustomer)

	phone := "+15559998888"
	_, err := service.UpdateProfile(ctx, customer.ID, &usecase.UpdateProfileInput{Phone: &phone})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CUSTOMER_ALREADY_EXISTS", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "phone number")
}
