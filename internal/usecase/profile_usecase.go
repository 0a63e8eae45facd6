package usecase

import (
	"context"

	"orchard/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput is the set of profile fields a customer may change.
// Pointer and nil-able fields distinguish "not provided" from "clear".
type UpdateProfileInput struct {
	Name                *string        `json:"name,omitempty"`
	Phone               *string        `json:"phone,omitempty"`
	Allergies           []string       `json:"allergies,omitempty"`
	DietaryRestrictions []string       `json:"dietary_restrictions,omitempty"`
	Preferences         map[string]any `json:"preferences,omitempty"`
}

// IsEmpty reports whether no updatable field was provided.
func (u *UpdateProfileInput) IsEmpty() bool {
	return u.Name == nil &&
		u.Phone == nil &&
		u.Allergies == nil &&
		u.DietaryRestrictions == nil &&
		u.Preferences == nil
}

// ProfileUsecase defines the authenticated customer profile use cases.
type ProfileUsecase interface {
	// GetProfile returns the customer linked to the authenticated identity.
	GetProfile(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error)

	// UpdateProfile patches the provided profile fields.
	UpdateProfile(ctx context.Context, customerID uuid.UUID, input *UpdateProfileInput) (*entity.Customer, error)
}
