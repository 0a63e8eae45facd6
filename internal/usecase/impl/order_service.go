// Package impl contains the concrete application services behind the usecase
// interfaces.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"orchard/config"
	deliveryctx "orchard/internal/delivery/context"
	"orchard/internal/domain/entity"
	domainerrors "orchard/internal/domain/errors"
	"orchard/internal/domain/repository"
	"orchard/internal/domain/service"
	"orchard/internal/usecase"
	"orchard/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	customerRepo   repository.CustomerRepository
	addressRepo    repository.AddressRepository
	projectionRepo repository.OrderProjectionRepository
	publisher      service.EventPublisher
	tokenService   service.TokenService
	qrcodeService  service.QRCodeService
	config         *config.Config
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OrderRepo      repository.OrderRepository
	CustomerRepo   repository.CustomerRepository
	AddressRepo    repository.AddressRepository
	ProjectionRepo repository.OrderProjectionRepository
	Publisher      service.EventPublisher
	TokenService   service.TokenService
	QRCodeService  service.QRCodeService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		customerRepo:   params.CustomerRepo,
		addressRepo:    params.AddressRepo,
		projectionRepo: params.ProjectionRepo,
		publisher:      params.Publisher,
		tokenService:   params.TokenService,
		qrcodeService:  params.QRCodeService,
		config:         params.Config,
		logger:         params.Logger,
	}
}

// CreateOrder places a new order: resolves the customer and products, prices
// the order, allocates the order number, and writes everything in one
// transaction before publishing the order-created event.
func (s *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*usecase.OrderResult, error) {
	if input.CustomerPhone == "" && input.CustomerEmail == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("customer phone or email is required")
	}
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one item is required")
	}

	fulfillment := entity.FulfillmentType(input.FulfillmentType)
	if fulfillment == "" {
		fulfillment = entity.FulfillmentDelivery
	}
	if fulfillment != entity.FulfillmentDelivery && fulfillment != entity.FulfillmentPickup {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown fulfillment type: %s", input.FulfillmentType))
	}
	if fulfillment == entity.FulfillmentDelivery && input.DeliveryAddress == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("delivery orders require a delivery address")
	}

	var (
		order    *entity.Order
		customer *entity.Customer
		address  *entity.RecipientAddress
	)

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		ensured, _, err := ensureCustomer(ctx, f.CustomerRepo(), &usecase.EnsureCustomerInput{
			Phone: input.CustomerPhone,
			Email: input.CustomerEmail,
			Name:  input.CustomerName,
		})
		if err != nil {
			return err
		}
		customer = ensured

		store, err := f.StoreRepo().FindDefault(ctx)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return domainerrors.ErrStoreNotFound
			}

			return errors.Wrap(err, "failed to resolve default store")
		}

		items, subtotal, err := resolveOrderItems(ctx, f.ProductRepo(), input.Items)
		if err != nil {
			return err
		}
		tax, shippingFee, total := computeTotals(s.config.Checkout, subtotal)

		sequence, err := f.OrderRepo().NextOrderSequence(ctx, store.ID)
		if err != nil {
			return errors.Wrap(err, "failed to allocate order sequence")
		}

		var addressID *uuid.UUID
		if fulfillment == entity.FulfillmentDelivery {
			address = &entity.RecipientAddress{
				ID:                  uuid.New(),
				CustomerID:          customer.ID,
				RecipientName:       input.DeliveryAddress.RecipientName,
				RecipientPhone:      input.DeliveryAddress.RecipientPhone,
				Street:              input.DeliveryAddress.Street,
				City:                input.DeliveryAddress.City,
				State:               input.DeliveryAddress.State,
				ZipCode:             input.DeliveryAddress.ZipCode,
				SpecialInstructions: input.DeliveryAddress.SpecialInstructions,
			}
			if err := f.AddressRepo().Create(ctx, address); err != nil {
				return err
			}
			addressID = &address.ID
		}

		order = &entity.Order{
			ID:                  uuid.New(),
			OrderNumber:         entity.FormatOrderNumber(store.OrderNumberPrefix, sequence),
			CustomerID:          customer.ID,
			StoreID:             store.ID,
			Status:              entity.OrderStatusPending,
			FulfillmentType:     fulfillment,
			ScheduledDate:       input.ScheduledDate,
			ScheduledTimeSlot:   input.ScheduledTimeSlot,
			SpecialInstructions: input.SpecialInstructions,
			PickupCustomerName:  input.PickupCustomerName,
			RecipientAddressID:  addressID,
			Items:               items,
			Subtotal:            subtotal,
			Tax:                 tax,
			ShippingFee:         shippingFee,
			Total:               total,
		}

		return f.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.publishOrderEvent(ctx, service.OrderEventCreated, order.ID, customer.ID)
	s.settle(ctx, s.config.Projection.CreateSettleDelay)

	result := s.readOrderView(ctx, order, customer, address)

	payment, err := s.buildPaymentInfo(ctx, order)
	if err != nil {
		return nil, err
	}
	result.Payment = payment

	return result, nil
}

// UpdateOrder patches the provided order fields and, when present, the linked
// delivery address sub-fields, inside a single transaction.
func (s *orderService) UpdateOrder(ctx context.Context, input *usecase.UpdateOrderInput) (*usecase.OrderResult, error) {
	if input.OrderID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("orderId is required")
	}
	if input.Updates.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no updates provided")
	}

	var order *entity.Order

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		found, err := f.OrderRepo().FindByID(ctx, input.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}
		order = found

		if !order.IsModifiable() {
			return domainerrors.ErrOrderNotModifiable.WithDetails(
				fmt.Sprintf("current status: %s", order.Status))
		}

		fields := orderPatchFields(&input.Updates)
		if len(fields) > 0 {
			if err := f.OrderRepo().Patch(ctx, order.ID, fields); err != nil {
				return errors.Wrap(err, "failed to patch order")
			}
		}

		if input.Updates.DeliveryAddress != nil {
			if order.RecipientAddressID == nil {
				return domainerrors.ErrAddressNotLinked
			}
			addrFields := addressPatchFields(input.Updates.DeliveryAddress)
			if len(addrFields) > 0 {
				if err := f.AddressRepo().Patch(ctx, *order.RecipientAddressID, addrFields); err != nil {
					return errors.Wrap(err, "failed to patch delivery address")
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishOrderEvent(ctx, service.OrderEventUpdated, order.ID, order.CustomerID)
	s.settle(ctx, s.config.Projection.UpdateSettleDelay)

	projection, err := s.projectionRepo.FindByOrderID(ctx, order.ID)
	if err == nil {
		return &usecase.OrderResult{Projection: projection, FromProjection: true}, nil
	}
	if !errors.Is(err, repository.ErrProjectionNotFound) {
		return nil, errors.Wrap(err, "failed to read order projection")
	}

	// Projection has not settled; rebuild the view from normalized rows.
	fresh, err := s.orderRepo.FindByID(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read order")
	}

	return s.readOrderView(ctx, fresh, nil, nil), nil
}

// GetOrder reads an order by id, order number, or the latest order for a
// customer phone, preferring the denormalized projection.
func (s *orderService) GetOrder(ctx context.Context, query *usecase.OrderQuery) (*usecase.OrderResult, error) {
	switch {
	case query.OrderID != nil:
		projection, err := s.projectionRepo.FindByOrderID(ctx, *query.OrderID)
		if err == nil {
			return &usecase.OrderResult{Projection: projection, FromProjection: true}, nil
		}
		if !errors.Is(err, repository.ErrProjectionNotFound) {
			return nil, errors.Wrap(err, "failed to read order projection")
		}
		order, err := s.orderRepo.FindByID(ctx, *query.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return nil, domainerrors.ErrOrderNotFound
			}

			return nil, errors.Wrap(err, "failed to find order")
		}

		return s.readOrderView(ctx, order, nil, nil), nil

	case query.OrderNumber != "":
		projection, err := s.projectionRepo.FindByOrderNumber(ctx, query.OrderNumber)
		if err == nil {
			return &usecase.OrderResult{Projection: projection, FromProjection: true}, nil
		}
		if !errors.Is(err, repository.ErrProjectionNotFound) {
			return nil, errors.Wrap(err, "failed to read order projection")
		}
		order, err := s.orderRepo.FindByOrderNumber(ctx, query.OrderNumber)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return nil, domainerrors.ErrOrderNotFound
			}

			return nil, errors.Wrap(err, "failed to find order by number")
		}

		return s.readOrderView(ctx, order, nil, nil), nil

	case query.CustomerPhone != "":
		customer, err := s.customerRepo.FindByPhone(ctx, query.CustomerPhone)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return nil, domainerrors.ErrCustomerNotFound
			}

			return nil, errors.Wrap(err, "failed to find customer by phone")
		}
		projection, err := s.projectionRepo.FindLatestByCustomer(ctx, customer.ID)
		if err == nil {
			return &usecase.OrderResult{Projection: projection, FromProjection: true}, nil
		}
		if !errors.Is(err, repository.ErrProjectionNotFound) {
			return nil, errors.Wrap(err, "failed to read order projection")
		}
		orders, err := s.orderRepo.FindRecentByCustomer(ctx, customer.ID, 1)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find recent orders")
		}
		if len(orders) == 0 {
			return nil, domainerrors.ErrOrderNotFound
		}

		return s.readOrderView(ctx, orders[0], customer, nil), nil

	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			"orderId, orderNumber, or customerPhone is required")
	}
}

// readOrderView returns the projection row when it exists; otherwise it
// rebuilds an equivalent view from normalized records.
func (s *orderService) readOrderView(ctx context.Context, order *entity.Order, customer *entity.Customer, address *entity.RecipientAddress) *usecase.OrderResult {
	projection, err := s.projectionRepo.FindByOrderID(ctx, order.ID)
	if err == nil {
		return &usecase.OrderResult{Projection: projection, FromProjection: true}
	}

	if customer == nil {
		customer, _ = s.customerRepo.FindByID(ctx, order.CustomerID)
	}
	if address == nil && order.RecipientAddressID != nil {
		address, _ = s.addressRepo.FindByID(ctx, *order.RecipientAddressID)
	}

	return &usecase.OrderResult{
		Projection:     buildProjection(order, customer, address),
		FromProjection: false,
	}
}

func (s *orderService) buildPaymentInfo(ctx context.Context, order *entity.Order) (*usecase.PaymentInfo, error) {
	token, err := s.tokenService.GeneratePaymentToken(order.ID, order.Total, s.config.Checkout.PaymentTokenTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment token")
	}
	paymentURL := fmt.Sprintf("%s?token=%s", s.config.Checkout.PaymentBaseURL, token)

	qrPNG, err := s.qrcodeService.GeneratePaymentQR(paymentURL)
	if err != nil {
		// The link alone is still usable; log and continue without a QR image.
		deliveryctx.GetLoggerOrDefault(ctx, s.logger).Warn("failed to generate payment QR",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
		qrPNG = nil
	}

	return &usecase.PaymentInfo{PaymentURL: paymentURL, QRCodePNG: qrPNG}, nil
}

// publishOrderEvent publishes asynchronously observed state changes. Publish
// failures are logged, not returned: the write has already committed and the
// reader falls back to normalized rows.
func (s *orderService) publishOrderEvent(ctx context.Context, eventType string, orderID, customerID uuid.UUID) {
	event := &service.OrderEvent{
		RequestID:  deliveryctx.GetRequestIDFromContext(ctx),
		EventType:  eventType,
		OrderID:    orderID.String(),
		CustomerID: customerID.String(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		deliveryctx.GetLoggerOrDefault(ctx, s.logger).Error("failed to publish order event",
			slog.String("event_type", eventType),
			slog.String("order_id", orderID.String()),
			slog.Any("error", err),
		)
	}
}

// settle waits for the configured delay so the asynchronous projection has a
// chance to refresh before re-reading. Best effort only.
func (s *orderService) settle(ctx context.Context, delay time.Duration) {
	if delay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(delay):
	}
}

// resolveOrderItems resolves each requested line against the catalog and
// returns the priced items with the order subtotal.
func resolveOrderItems(ctx context.Context, productRepo repository.ProductRepository, inputs []usecase.OrderItemInput) ([]entity.OrderItem, float64, error) {
	items := make([]entity.OrderItem, 0, len(inputs))
	var subtotal float64

	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, 0, domainerrors.ErrValidationFailed.WithDetails("item quantity must be positive")
		}

		product, err := resolveProduct(ctx, productRepo, in)
		if err != nil {
			return nil, 0, err
		}

		var option *entity.ProductOption
		optionName := ""
		if in.OptionName != "" {
			found, ok := product.FindOption(in.OptionName)
			if !ok {
				return nil, 0, domainerrors.ErrProductOptionNotFound.WithDetails(
					fmt.Sprintf("product %q has no option %q", product.Name, in.OptionName))
			}
			option = found
			optionName = found.Name
		}

		unitPrice := product.OptionPrice(option)
		lineTotal := util.RoundMoney(unitPrice * float64(in.Quantity))
		subtotal += lineTotal

		items = append(items, entity.OrderItem{
			ID:          uuid.New(),
			ProductID:   product.ID,
			ProductName: product.Name,
			OptionName:  optionName,
			Quantity:    in.Quantity,
			UnitPrice:   unitPrice,
			LineTotal:   lineTotal,
		})
	}

	return items, util.RoundMoney(subtotal), nil
}

// resolveProduct finds a product by four-digit code, id, or name, in that
// priority.
func resolveProduct(ctx context.Context, productRepo repository.ProductRepository, in usecase.OrderItemInput) (*entity.Product, error) {
	switch {
	case in.ProductCode != 0:
		if !entity.IsValidProductCode(in.ProductCode) {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("product code %d is not a four-digit code", in.ProductCode))
		}
		product, err := productRepo.FindByCode(ctx, in.ProductCode)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound.WithDetails(
					fmt.Sprintf("no product with code %d", in.ProductCode))
			}

			return nil, errors.Wrap(err, "failed to find product by code")
		}

		return product, nil

	case in.ProductID != "":
		id, err := uuid.Parse(in.ProductID)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("product_id is not a valid UUID")
		}
		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound
			}

			return nil, errors.Wrap(err, "failed to find product by ID")
		}

		return product, nil

	case in.ProductName != "":
		product, err := productRepo.FindByName(ctx, in.ProductName)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound.WithDetails(
					fmt.Sprintf("no product named %q", in.ProductName))
			}

			return nil, errors.Wrap(err, "failed to find product by name")
		}

		return product, nil

	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			"each item needs a product code, id, or name")
	}
}

// computeTotals applies the checkout pricing rules to a subtotal.
func computeTotals(checkout *config.CheckoutConfig, subtotal float64) (tax, shippingFee, total float64) {
	tax = util.RoundMoney(subtotal * checkout.TaxRate)
	if subtotal < checkout.FreeShippingThreshold {
		shippingFee = checkout.ShippingFee
	}
	total = util.RoundMoney(subtotal + tax + shippingFee)

	return tax, shippingFee, total
}

// orderPatchFields maps provided update fields to order columns.
func orderPatchFields(updates *usecase.OrderUpdates) map[string]any {
	fields := make(map[string]any)
	if updates.ScheduledDate != nil {
		fields["scheduled_date"] = *updates.ScheduledDate
	}
	if updates.ScheduledTimeSlot != nil {
		fields["scheduled_time_slot"] = *updates.ScheduledTimeSlot
	}
	if updates.SpecialInstructions != nil {
		fields["special_instructions"] = *updates.SpecialInstructions
	}
	if updates.PickupCustomerName != nil {
		fields["pickup_customer_name"] = *updates.PickupCustomerName
	}

	return fields
}

// addressPatchFields maps provided address sub-fields to address columns.
func addressPatchFields(updates *usecase.DeliveryAddressUpdate) map[string]any {
	fields := make(map[string]any)
	if updates.Street != nil {
		fields["street"] = *updates.Street
	}
	if updates.City != nil {
		fields["city"] = *updates.City
	}
	if updates.State != nil {
		fields["state"] = *updates.State
	}
	if updates.ZipCode != nil {
		fields["zip_code"] = *updates.ZipCode
	}
	if updates.SpecialInstructions != nil {
		fields["special_instructions"] = *updates.SpecialInstructions
	}

	return fields
}

// buildProjection assembles a projection-shaped view from normalized records
// when the asynchronous projection row is missing or stale.
func buildProjection(order *entity.Order, customer *entity.Customer, address *entity.RecipientAddress) *entity.OrderProjection {
	projection := &entity.OrderProjection{
		OrderID:             order.ID,
		OrderNumber:         order.OrderNumber,
		Status:              order.Status,
		FulfillmentType:     string(order.FulfillmentType),
		ScheduledDate:       order.ScheduledDate,
		ScheduledTimeSlot:   order.ScheduledTimeSlot,
		SpecialInstructions: order.SpecialInstructions,
		PickupCustomerName:  order.PickupCustomerName,
		CustomerID:          order.CustomerID,
		ItemsSummary:        itemsSummary(order.Items),
		ItemCount:           len(order.Items),
		Subtotal:            order.Subtotal,
		Tax:                 order.Tax,
		ShippingFee:         order.ShippingFee,
		Total:               order.Total,
		OrderCreatedAt:      order.CreatedAt,
		RefreshedAt:         time.Now(),
	}

	if customer != nil {
		projection.CustomerName = customer.Name
		projection.CustomerEmail = customer.Email
		projection.CustomerPhone = customer.Phone
	}
	if address != nil {
		projection.DeliveryStreet = address.Street
		projection.DeliveryCity = address.City
		projection.DeliveryState = address.State
		projection.DeliveryZipCode = address.ZipCode
		projection.DeliveryInstructions = address.SpecialInstructions
	}

	return projection
}

// itemsSummary renders order lines as one human-readable string, e.g.
// "2x Apple Pie (Large), 1x Cider".
func itemsSummary(items []entity.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item.OptionName != "" {
			parts = append(parts, fmt.Sprintf("%dx %s (%s)", item.Quantity, item.ProductName, item.OptionName))
		} else {
			parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity, item.ProductName))
		}
	}

	return strings.Join(parts, ", ")
}
