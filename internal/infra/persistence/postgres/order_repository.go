package postgres

import (
	"context"
	"time"

	"orchard/internal/domain/entity"
	domainerrors "orchard/internal/domain/errors"
	"orchard/internal/domain/repository"
	"orchard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order together with its items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("order number already allocated")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid customer or store reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range orderM.Items {
		order.Items[i].ID = orderM.Items[i].ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

// FindByID retrieves an order with its items by unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByOrderNumber retrieves an order with its items by order number.
func (repo *orderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("order_number = ?", orderNumber).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by order number")
	}

	return toOrderDomain(&orderM), nil
}

// FindRecentByCustomer retrieves the customer's latest orders, newest first.
func (repo *orderRepository) FindRecentByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent orders by customer")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// CountByCustomer counts all orders belonging to a customer.
func (repo *orderRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders by customer")
	}

	return count, nil
}

// Patch applies only the given column values to the order row.
func (repo *orderRepository) Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to patch order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// ReassignCustomer re-points all of fromCustomer's orders to toCustomer.
func (repo *orderRepository) ReassignCustomer(ctx context.Context, fromCustomer, toCustomer uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("customer_id = ?", fromCustomer).
		Update("customer_id", toCustomer)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to reassign orders")
	}

	return result.RowsAffected, nil
}

// NextOrderSequence allocates the next order number sequence value for a
// store. The row is locked for the duration of the surrounding transaction so
// concurrent allocations cannot collide.
func (repo *orderRepository) NextOrderSequence(ctx context.Context, storeID uuid.UUID) (int64, error) {
	var seq model.StoreOrderSequenceModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("store_id = ?", storeID).
		First(&seq).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.Wrap(err, "failed to lock order sequence")
		}

		seq = model.StoreOrderSequenceModel{StoreID: storeID, LastValue: 0}
		if err := repo.db.WithContext(ctx).Create(&seq).Error; err != nil {
			return 0, errors.Wrap(err, "failed to create order sequence")
		}
	}

	seq.LastValue++
	seq.UpdatedAt = time.Now()
	if err := repo.db.WithContext(ctx).Save(&seq).Error; err != nil {
		return 0, errors.Wrap(err, "failed to advance order sequence")
	}

	return seq.LastValue, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.OrderItem{
			ID:          itemM.ID,
			OrderID:     itemM.OrderID,
			ProductID:   itemM.ProductID,
			ProductName: itemM.ProductName,
			OptionName:  itemM.OptionName,
			Quantity:    itemM.Quantity,
			UnitPrice:   itemM.UnitPrice,
			LineTotal:   itemM.LineTotal,
		})
	}

	return &entity.Order{
		ID:                  data.ID,
		OrderNumber:         data.OrderNumber,
		CustomerID:          data.CustomerID,
		StoreID:             data.StoreID,
		Status:              entity.OrderStatus(data.Status),
		FulfillmentType:     entity.FulfillmentType(data.FulfillmentType),
		ScheduledDate:       data.ScheduledDate,
		ScheduledTimeSlot:   data.ScheduledTimeSlot,
		SpecialInstructions: data.SpecialInstructions,
		PickupCustomerName:  data.PickupCustomerName,
		RecipientAddressID:  data.RecipientAddressID,
		Items:               items,
		Subtotal:            data.Subtotal,
		Tax:                 data.Tax,
		ShippingFee:         data.ShippingFee,
		Total:               data.Total,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			OptionName:  item.OptionName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
	}

	return &model.OrderModel{
		ID:                  data.ID,
		OrderNumber:         data.OrderNumber,
		CustomerID:          data.CustomerID,
		StoreID:             data.StoreID,
		Status:              string(data.Status),
		FulfillmentType:     string(data.FulfillmentType),
		ScheduledDate:       data.ScheduledDate,
		ScheduledTimeSlot:   data.ScheduledTimeSlot,
		SpecialInstructions: data.SpecialInstructions,
		PickupCustomerName:  data.PickupCustomerName,
		RecipientAddressID:  data.RecipientAddressID,
		Subtotal:            data.Subtotal,
		Tax:                 data.Tax,
		ShippingFee:         data.ShippingFee,
		Total:               data.Total,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
		Items:               items,
	}
}
