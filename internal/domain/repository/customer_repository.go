// Package repository defines the persistence interfaces of the domain layer.
package repository

import (
	"context"

	"orchard/internal/domain/entity"
	"orchard/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors returned by repositories. Use cases translate these into
// AppError values at the boundary.
var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrDuplicateCustomer  = errors.New("customer already exists")
	ErrOrderNotFound      = errors.New("order not found")
	ErrAddressNotFound    = errors.New("recipient address not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrStoreNotFound      = errors.New("store not found")
	ErrProjectionNotFound = errors.New("order projection not found")
)

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*entity.Customer, error)

	// FindByEmail resolves a customer by exact email. Archived and temp
	// placeholder emails are real rows and resolve like any other.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)

	FindByAuthUserID(ctx context.Context, authUserID uuid.UUID) (*entity.Customer, error)

	// FindBySessionID resolves a customer whose preferences carry the given
	// chatbot session id.
	FindBySessionID(ctx context.Context, sessionID string) (*entity.Customer, error)

	Update(ctx context.Context, customer *entity.Customer) error

	// Patch applies only the given column values to the customer row.
	Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error
}
