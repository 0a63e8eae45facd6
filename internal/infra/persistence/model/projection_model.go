package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderProjectionModel is the GORM-specific struct for the
// 'chatbot_orders_flat' table, the denormalized read model the chatbot
// endpoints return. One row per order, refreshed by the projector worker.
type OrderProjectionModel struct {
	OrderID             uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderNumber         string    `gorm:"not null;uniqueIndex"`
	Status              string    `gorm:"not null"`
	FulfillmentType     string
	ScheduledDate       string
	ScheduledTimeSlot   string
	SpecialInstructions string
	PickupCustomerName  string

	CustomerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	ItemsSummary string
	ItemCount    int     `gorm:"not null;default:0"`
	Subtotal     float64 `gorm:"type:decimal(10,2);not null;default:0"`
	Tax          float64 `gorm:"type:decimal(10,2);not null;default:0"`
	ShippingFee  float64 `gorm:"type:decimal(10,2);not null;default:0"`
	Total        float64 `gorm:"type:decimal(10,2);not null;default:0"`

	DeliveryStreet       string
	DeliveryCity         string
	DeliveryState        string
	DeliveryZipCode      string
	DeliveryInstructions string

	OrderCreatedAt time.Time
	RefreshedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderProjectionModel) TableName() string {
	return "chatbot_orders_flat"
}
