package repository

import (
	"context"

	"orchard/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderProjectionRepository defines operations on the denormalized order read
// model. Reads tolerate eventual consistency; Upsert is used by the
// projection worker only.
type OrderProjectionRepository interface {
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.OrderProjection, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.OrderProjection, error)

	// FindLatestByCustomer returns the customer's most recent projection row.
	FindLatestByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.OrderProjection, error)

	Upsert(ctx context.Context, projection *entity.OrderProjection) error
}
