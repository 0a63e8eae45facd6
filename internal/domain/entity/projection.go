package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderProjection is the denormalized, read-optimized copy of an order joined
// with its customer, items, and delivery details. It is refreshed
// asynchronously after normalized writes, so readers must tolerate a stale or
// missing row immediately after a write.
type OrderProjection struct {
	OrderID             uuid.UUID   `json:"order_id"`
	OrderNumber         string      `json:"order_number"`
	Status              OrderStatus `json:"status"`
	FulfillmentType     string      `json:"fulfillment_type"`
	ScheduledDate       string      `json:"scheduled_date"`
	ScheduledTimeSlot   string      `json:"scheduled_time_slot"`
	SpecialInstructions string      `json:"special_instructions"`
	PickupCustomerName  string      `json:"pickup_customer_name"`

	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`

	ItemsSummary string  `json:"items_summary"`
	ItemCount    int     `json:"item_count"`
	Subtotal     float64 `json:"subtotal"`
	Tax          float64 `json:"tax"`
	ShippingFee  float64 `json:"shipping_fee"`
	Total        float64 `json:"total"`

	DeliveryStreet       string `json:"delivery_street"`
	DeliveryCity         string `json:"delivery_city"`
	DeliveryState        string `json:"delivery_state"`
	DeliveryZipCode      string `json:"delivery_zip_code"`
	DeliveryInstructions string `json:"delivery_instructions"`

	OrderCreatedAt time.Time `json:"order_created_at"`
	RefreshedAt    time.Time `json:"refreshed_at"`
}
