package service

import (
	"context"
)

// Order event types carried in the event payload and message attributes.
const (
	OrderEventCreated = "order.created"
	OrderEventUpdated = "order.updated"
	OrderEventMerged  = "customer.merged"
)

// OrderEvent signals that normalized order or customer rows changed and the
// denormalized projection must be refreshed by the projector worker.
type OrderEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	EventType  string `json:"event_type"`
	OrderID    string `json:"order_id,omitempty"`
	CustomerID string `json:"customer_id,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async projection refresh
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
