package impl

import (
	"context"

	"orchard/internal/domain/entity"
	domainerrors "orchard/internal/domain/errors"
	"orchard/internal/domain/repository"
	"orchard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type profileService struct {
	customerRepo repository.CustomerRepository
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		customerRepo: params.CustomerRepo,
	}
}

// GetProfile returns the customer linked to the authenticated identity.
func (s *profileService) GetProfile(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}

// UpdateProfile patches the provided profile fields and returns the updated
// customer.
func (s *profileService) UpdateProfile(ctx context.Context, customerID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Customer, error) {
	if input.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no profile fields provided")
	}

	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Allergies != nil {
		customer.Allergies = entity.MergeStringSets(input.Allergies, nil)
	}
	if input.DietaryRestrictions != nil {
		customer.DietaryRestrictions = entity.MergeStringSets(input.DietaryRestrictions, nil)
	}
	if input.Preferences != nil {
		if customer.Preferences == nil {
			customer.Preferences = make(map[string]any, len(input.Preferences))
		}
		for key, value := range input.Preferences {
			customer.Preferences[key] = value
		}
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateCustomer) {
			return nil, domainerrors.ErrCustomerAlreadyExists.WithDetails(
				"another account already uses this phone number")
		}

		return nil, errors.Wrap(err, "failed to update customer")
	}

	return customer, nil
}
