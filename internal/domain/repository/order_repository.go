package repository

import (
	"context"

	"orchard/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository defines persistence operations for orders and their items.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error)

	// FindRecentByCustomer returns the customer's latest orders, newest first.
	FindRecentByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*entity.Order, error)

	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)

	// Patch applies only the given column values to the order row.
	Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error

	// ReassignCustomer re-points all of fromCustomer's orders to toCustomer
	// and returns the number of orders moved.
	ReassignCustomer(ctx context.Context, fromCustomer, toCustomer uuid.UUID) (int64, error)

	// NextOrderSequence allocates the next order number sequence value for a
	// store.
	NextOrderSequence(ctx context.Context, storeID uuid.UUID) (int64, error)
}
