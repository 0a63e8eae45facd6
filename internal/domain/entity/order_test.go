package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   OrderStatus
		to     OrderStatus
		expect bool
	}{
		{name: "pending to confirmed", from: OrderStatusPending, to: OrderStatusConfirmed, expect: true},
		{name: "pending skips ahead to shipped", from: OrderStatusPending, to: OrderStatusShipped, expect: true},
		{name: "confirmed back to pending", from: OrderStatusConfirmed, to: OrderStatusPending, expect: false},
		{name: "preparing to cancelled", from: OrderStatusPreparing, to: OrderStatusCancelled, expect: true},
		{name: "shipped to cancelled", from: OrderStatusShipped, to: OrderStatusCancelled, expect: false},
		{name: "delivered is terminal", from: OrderStatusDelivered, to: OrderStatusCancelled, expect: false},
		{name: "cancelled is terminal", from: OrderStatusCancelled, to: OrderStatusPending, expect: false},
		{name: "unknown status", from: OrderStatus("mystery"), to: OrderStatusConfirmed, expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.True(t, OrderStatusCancelled.IsValid())
	assert.False(t, OrderStatus("unknown").IsValid())
}

func TestOrder_IsModifiable(t *testing.T) {
	modifiable := []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusCancelled}
	for _, status := range modifiable {
		order := &Order{Status: status}
		assert.True(t, order.IsModifiable(), "status %s should be modifiable", status)
	}

	frozen := []OrderStatus{OrderStatusShipped, OrderStatusDelivered}
	for _, status := range frozen {
		order := &Order{Status: status}
		assert.False(t, order.IsModifiable(), "status %s should not be modifiable", status)
	}
}

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "W1200000042-1", FormatOrderNumber("12", 42))
	assert.Equal(t, "W3400000007-1", FormatOrderNumber("34", 7))
	assert.Equal(t, "W5612345678-1", FormatOrderNumber("56", 12345678))
}
