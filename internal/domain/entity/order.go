package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
// Transitions are one-directional toward a terminal state.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// statusRank orders the forward progression of an order.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusConfirmed: 1,
	OrderStatusPreparing: 2,
	OrderStatusShipped:   3,
	OrderStatusDelivered: 4,
}

// IsValid reports whether the status is one of the known states.
func (s OrderStatus) IsValid() bool {
	if s == OrderStatusCancelled {
		return true
	}
	_, ok := statusRank[s]

	return ok
}

// IsTerminal reports whether no further transitions are allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the status may move to the target state.
// Forward-only; cancellation is allowed from any state that has not shipped.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if !s.IsValid() || !target.IsValid() || s.IsTerminal() {
		return false
	}
	if target == OrderStatusCancelled {
		return statusRank[s] < statusRank[OrderStatusShipped]
	}

	return statusRank[target] > statusRank[s]
}

// FulfillmentType distinguishes delivery orders from in-store pickup.
type FulfillmentType string

const (
	FulfillmentDelivery FulfillmentType = "delivery"
	FulfillmentPickup   FulfillmentType = "pickup"
)

// Order is a customer purchase with its line items and fulfillment details.
type Order struct {
	ID                  uuid.UUID       `json:"id"`
	OrderNumber         string          `json:"order_number"`
	CustomerID          uuid.UUID       `json:"customer_id"`
	StoreID             uuid.UUID       `json:"store_id"`
	Status              OrderStatus     `json:"status"`
	FulfillmentType     FulfillmentType `json:"fulfillment_type"`
	ScheduledDate       string          `json:"scheduled_date"`
	ScheduledTimeSlot   string          `json:"scheduled_time_slot"`
	SpecialInstructions string          `json:"special_instructions"`
	PickupCustomerName  string          `json:"pickup_customer_name"`
	RecipientAddressID  *uuid.UUID      `json:"recipient_address_id,omitempty"`
	Items               []OrderItem     `json:"items"`
	Subtotal            float64         `json:"subtotal"`
	Tax                 float64         `json:"tax"`
	ShippingFee         float64         `json:"shipping_fee"`
	Total               float64         `json:"total"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// OrderItem is one purchased product line within an order.
type OrderItem struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	OptionName  string    `json:"option_name,omitempty"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	LineTotal   float64   `json:"line_total"`
}

// IsModifiable reports whether the order may still be patched.
// Shipped and delivered orders are immutable.
func (o *Order) IsModifiable() bool {
	return o.Status != OrderStatusShipped && o.Status != OrderStatusDelivered
}

// FormatOrderNumber builds an order number from the store prefix and its
// next sequence value, e.g. W1200000042-1.
func FormatOrderNumber(storePrefix string, sequence int64) string {
	return fmt.Sprintf("W%s%08d-1", storePrefix, sequence)
}
