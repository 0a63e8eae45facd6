package repository

import (
	"context"

	"orchard/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressRepository defines persistence operations for recipient addresses.
type AddressRepository interface {
	Create(ctx context.Context, address *entity.RecipientAddress) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecipientAddress, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.RecipientAddress, error)

	// Patch applies only the given column values to the address row.
	Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error
}
