package impl

import (
	"context"
	"log/slog"

	deliveryctx "orchard/internal/delivery/context"
	"orchard/internal/domain/entity"
	"orchard/internal/domain/repository"
	"orchard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// refreshOrderLimit caps how many of a customer's orders are refreshed after
// a merge. Older orders pick up the new customer fields on their next
// individual refresh.
const refreshOrderLimit = 100

type projectionService struct {
	orderRepo      repository.OrderRepository
	customerRepo   repository.CustomerRepository
	addressRepo    repository.AddressRepository
	projectionRepo repository.OrderProjectionRepository
	logger         *slog.Logger
}

// ProjectionServiceParams holds dependencies for ProjectionService, injected by Fx.
type ProjectionServiceParams struct {
	fx.In

	OrderRepo      repository.OrderRepository
	CustomerRepo   repository.CustomerRepository
	AddressRepo    repository.AddressRepository
	ProjectionRepo repository.OrderProjectionRepository
	Logger         *slog.Logger
}

// NewProjectionService creates a new projection service instance
func NewProjectionService(params ProjectionServiceParams) usecase.ProjectionUsecase {
	return &projectionService{
		orderRepo:      params.OrderRepo,
		customerRepo:   params.CustomerRepo,
		addressRepo:    params.AddressRepo,
		projectionRepo: params.ProjectionRepo,
		logger:         params.Logger,
	}
}

// RefreshOrderProjection re-reads the normalized order with its customer and
// address and upserts the denormalized row.
func (s *projectionService) RefreshOrderProjection(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return errors.Wrap(err, "failed to find order")
	}

	return s.refreshOrder(ctx, order)
}

// RefreshCustomerProjections refreshes the customer's recent orders, picking
// up re-pointed ownership and merged profile fields.
func (s *projectionService) RefreshCustomerProjections(ctx context.Context, customerID uuid.UUID) error {
	orders, err := s.orderRepo.FindRecentByCustomer(ctx, customerID, refreshOrderLimit)
	if err != nil {
		return errors.Wrap(err, "failed to find customer orders")
	}

	for _, order := range orders {
		if err := s.refreshOrder(ctx, order); err != nil {
			return err
		}
	}

	deliveryctx.GetLoggerOrDefault(ctx, s.logger).Info("refreshed customer projections",
		slog.String("customer_id", customerID.String()),
		slog.Int("order_count", len(orders)),
	)

	return nil
}

func (s *projectionService) refreshOrder(ctx context.Context, order *entity.Order) error {
	customer, err := s.customerRepo.FindByID(ctx, order.CustomerID)
	if err != nil {
		return errors.Wrap(err, "failed to find order customer")
	}

	var address *entity.RecipientAddress
	if order.RecipientAddressID != nil {
		address, err = s.addressRepo.FindByID(ctx, *order.RecipientAddressID)
		if err != nil && !errors.Is(err, repository.ErrAddressNotFound) {
			return errors.Wrap(err, "failed to find delivery address")
		}
	}

	projection := buildProjection(order, customer, address)
	if err := s.projectionRepo.Upsert(ctx, projection); err != nil {
		return errors.Wrap(err, "failed to upsert order projection")
	}

	return nil
}
