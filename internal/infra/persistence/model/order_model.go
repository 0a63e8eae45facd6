package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber         string     `gorm:"not null;uniqueIndex"`
	CustomerID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	StoreID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status              string     `gorm:"not null;default:'pending'"`
	FulfillmentType     string     `gorm:"not null;default:'delivery'"`
	ScheduledDate       string
	ScheduledTimeSlot   string
	SpecialInstructions string
	PickupCustomerName  string
	RecipientAddressID  *uuid.UUID `gorm:"type:uuid;index"`
	Subtotal            float64    `gorm:"type:decimal(10,2);not null;default:0"`
	Tax                 float64    `gorm:"type:decimal(10,2);not null;default:0"`
	ShippingFee         float64    `gorm:"type:decimal(10,2);not null;default:0"`
	Total               float64    `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	ProductName string    `gorm:"not null"`
	OptionName  string
	Quantity    int       `gorm:"not null;default:1"`
	UnitPrice   float64   `gorm:"type:decimal(10,2);not null"`
	LineTotal   float64   `gorm:"type:decimal(10,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// StoreOrderSequenceModel is the GORM-specific struct for the
// 'store_order_sequences' table, holding each store's order number counter.
type StoreOrderSequenceModel struct {
	StoreID   uuid.UUID `gorm:"type:uuid;primary_key"`
	LastValue int64     `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreOrderSequenceModel) TableName() string {
	return "store_order_sequences"
}
