package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ProjectionUsecase rebuilds the denormalized order read model. It is driven
// by the projector worker in response to order and customer events.
type ProjectionUsecase interface {
	// RefreshOrderProjection re-reads one order with its customer and address
	// and upserts the projection row.
	RefreshOrderProjection(ctx context.Context, orderID uuid.UUID) error

	// RefreshCustomerProjections refreshes the projections of a customer's
	// recent orders, e.g. after an account merge re-pointed them.
	RefreshCustomerProjections(ctx context.Context, customerID uuid.UUID) error
}
