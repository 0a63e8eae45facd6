// Package usecase defines the application service interfaces and their
// request/response types.
package usecase

import (
	"context"

	"orchard/internal/domain/entity"

	"github.com/google/uuid"
)

// OutputType selects between the chatbot-friendly streamlined view and a raw
// projection echo.
type OutputType string

const (
	OutputStreamlined OutputType = "streamlined"
	OutputJSON        OutputType = "json"
)

// OrderItemInput identifies one requested order line. A product is resolved by
// four-digit code, by id, or by name, in that priority; the option is matched
// by name, case-insensitively.
type OrderItemInput struct {
	ProductCode int    `json:"product_code,omitempty"`
	ProductID   string `json:"product_id,omitempty"`
	ProductName string `json:"product_name,omitempty"`
	OptionName  string `json:"option_name,omitempty"`
	Quantity    int    `json:"quantity"`
}

// DeliveryAddressInput carries the delivery destination for a delivery order.
type DeliveryAddressInput struct {
	RecipientName       string `json:"recipient_name,omitempty"`
	RecipientPhone      string `json:"recipient_phone,omitempty"`
	Street              string `json:"street"`
	City                string `json:"city"`
	State               string `json:"state"`
	ZipCode             string `json:"zipCode"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// CreateOrderInput is the request to place a new order.
type CreateOrderInput struct {
	CustomerPhone       string                `json:"customer_phone"`
	CustomerEmail       string                `json:"customer_email,omitempty"`
	CustomerName        string                `json:"customer_name,omitempty"`
	Items               []OrderItemInput      `json:"items"`
	FulfillmentType     string                `json:"fulfillment_type"`
	ScheduledDate       string                `json:"scheduled_date,omitempty"`
	ScheduledTimeSlot   string                `json:"scheduled_time_slot,omitempty"`
	SpecialInstructions string                `json:"special_instructions,omitempty"`
	PickupCustomerName  string                `json:"pickup_customer_name,omitempty"`
	DeliveryAddress     *DeliveryAddressInput `json:"delivery_address,omitempty"`
}

// DeliveryAddressUpdate is the partial address patch accepted by order update.
// Pointer fields distinguish "not provided" from "set to empty".
type DeliveryAddressUpdate struct {
	Street              *string `json:"street,omitempty"`
	City                *string `json:"city,omitempty"`
	State               *string `json:"state,omitempty"`
	ZipCode             *string `json:"zipCode,omitempty"`
	SpecialInstructions *string `json:"specialInstructions,omitempty"`
}

// OrderUpdates is the set of fields an order-update request may patch.
type OrderUpdates struct {
	ScheduledDate       *string                `json:"scheduled_date,omitempty"`
	ScheduledTimeSlot   *string                `json:"scheduled_time_slot,omitempty"`
	SpecialInstructions *string                `json:"special_instructions,omitempty"`
	PickupCustomerName  *string                `json:"pickup_customer_name,omitempty"`
	DeliveryAddress     *DeliveryAddressUpdate `json:"delivery_address,omitempty"`
}

// IsEmpty reports whether no updatable field was provided.
func (u *OrderUpdates) IsEmpty() bool {
	return u.ScheduledDate == nil &&
		u.ScheduledTimeSlot == nil &&
		u.SpecialInstructions == nil &&
		u.PickupCustomerName == nil &&
		u.DeliveryAddress == nil
}

// UpdateOrderInput is the request to patch an existing order.
type UpdateOrderInput struct {
	OrderID uuid.UUID
	Updates OrderUpdates
}

// OrderQuery locates an order for reads: by id, by order number, or the
// latest order for a customer phone.
type OrderQuery struct {
	OrderID       *uuid.UUID
	OrderNumber   string
	CustomerPhone string
}

// PaymentInfo carries the payment link issued for a newly created order.
type PaymentInfo struct {
	PaymentURL string `json:"payment_url"`
	QRCodePNG  []byte `json:"qr_code_png,omitempty"`
}

// OrderResult is the read model returned by order operations. Projection is
// the denormalized row when available, or an equivalent view rebuilt from
// normalized records when the projection has not settled yet.
type OrderResult struct {
	Projection     *entity.OrderProjection
	FromProjection bool
	Payment        *PaymentInfo
}

// OrderUsecase defines the order management use cases.
type OrderUsecase interface {
	// CreateOrder places a new order, allocates its order number, and issues
	// a payment link for the total.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*OrderResult, error)

	// UpdateOrder patches the provided fields of a modifiable order and its
	// linked delivery address in one transaction.
	UpdateOrder(ctx context.Context, input *UpdateOrderInput) (*OrderResult, error)

	// GetOrder reads an order by id, order number, or customer phone.
	GetOrder(ctx context.Context, query *OrderQuery) (*OrderResult, error)
}
