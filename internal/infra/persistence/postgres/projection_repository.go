package postgres

import (
	"context"

	"orchard/internal/domain/entity"
	domainerrors "orchard/internal/domain/errors"
	"orchard/internal/domain/repository"
	"orchard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderProjectionRepository implements repository.OrderProjectionRepository.
type orderProjectionRepository struct {
	db *gorm.DB
}

// NewOrderProjectionRepository is the constructor for orderProjectionRepository.
func NewOrderProjectionRepository(db *gorm.DB) repository.OrderProjectionRepository {
	return &orderProjectionRepository{
		db: db,
	}
}

// FindByOrderID retrieves the projection row for an order.
func (repo *orderProjectionRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.OrderProjection, error) {
	var projectionM model.OrderProjectionModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&projectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find projection by order ID")
	}

	return toProjectionDomain(&projectionM), nil
}

// FindByOrderNumber retrieves the projection row by order number.
func (repo *orderProjectionRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.OrderProjection, error) {
	var projectionM model.OrderProjectionModel

	if err := repo.db.WithContext(ctx).
		Where("order_number = ?", orderNumber).
		First(&projectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find projection by order number")
	}

	return toProjectionDomain(&projectionM), nil
}

// FindLatestByCustomer retrieves the customer's most recent projection row.
func (repo *orderProjectionRepository) FindLatestByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.OrderProjection, error) {
	var projectionM model.OrderProjectionModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("order_created_at DESC").
		First(&projectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest projection by customer")
	}

	return toProjectionDomain(&projectionM), nil
}

// Upsert writes the projection row, replacing any existing row for the order.
func (repo *orderProjectionRepository) Upsert(ctx context.Context, projection *entity.OrderProjection) error {
	projectionM := fromProjectionDomain(projection)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			UpdateAll: true,
		}).
		Create(projectionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert order projection")
	}

	return nil
}

// --- Mapper Functions ---

// toProjectionDomain converts a GORM OrderProjectionModel to a domain entity.
func toProjectionDomain(data *model.OrderProjectionModel) *entity.OrderProjection {
	if data == nil {
		return nil
	}

	return &entity.OrderProjection{
		OrderID:              data.OrderID,
		OrderNumber:          data.OrderNumber,
		Status:               entity.OrderStatus(data.Status),
		FulfillmentType:      data.FulfillmentType,
		ScheduledDate:        data.ScheduledDate,
		ScheduledTimeSlot:    data.ScheduledTimeSlot,
		SpecialInstructions:  data.SpecialInstructions,
		PickupCustomerName:   data.PickupCustomerName,
		CustomerID:           data.CustomerID,
		CustomerName:         data.CustomerName,
		CustomerEmail:        data.CustomerEmail,
		CustomerPhone:        data.CustomerPhone,
		ItemsSummary:         data.ItemsSummary,
		ItemCount:            data.ItemCount,
		Subtotal:             data.Subtotal,
		Tax:                  data.Tax,
		ShippingFee:          data.ShippingFee,
		Total:                data.Total,
		DeliveryStreet:       data.DeliveryStreet,
		DeliveryCity:         data.DeliveryCity,
		DeliveryState:        data.DeliveryState,
		DeliveryZipCode:      data.DeliveryZipCode,
		DeliveryInstructions: data.DeliveryInstructions,
		OrderCreatedAt:       data.OrderCreatedAt,
		RefreshedAt:          data.RefreshedAt,
	}
}

// fromProjectionDomain converts a domain entity to a GORM OrderProjectionModel.
func fromProjectionDomain(data *entity.OrderProjection) *model.OrderProjectionModel {
	if data == nil {
		return nil
	}

	return &model.OrderProjectionModel{
		OrderID:              data.OrderID,
		OrderNumber:          data.OrderNumber,
		Status:               string(data.Status),
		FulfillmentType:      data.FulfillmentType,
		ScheduledDate:        data.ScheduledDate,
		ScheduledTimeSlot:    data.ScheduledTimeSlot,
		SpecialInstructions:  data.SpecialInstructions,
		PickupCustomerName:   data.PickupCustomerName,
		CustomerID:           data.CustomerID,
		CustomerName:         data.CustomerName,
		CustomerEmail:        data.CustomerEmail,
		CustomerPhone:        data.CustomerPhone,
		ItemsSummary:         data.ItemsSummary,
		ItemCount:            data.ItemCount,
		Subtotal:             data.Subtotal,
		Tax:                  data.Tax,
		ShippingFee:          data.ShippingFee,
		Total:                data.Total,
		DeliveryStreet:       data.DeliveryStreet,
		DeliveryCity:         data.DeliveryCity,
		DeliveryState:        data.DeliveryState,
		DeliveryZipCode:      data.DeliveryZipCode,
		DeliveryInstructions: data.DeliveryInstructions,
		OrderCreatedAt:       data.OrderCreatedAt,
		RefreshedAt:          data.RefreshedAt,
	}
}
