package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartState_AddItem(t *testing.T) {
	productID := uuid.New()
	cart := &CartState{}

	cart.AddItem(CartItem{ProductID: productID, OptionName: "Large", Quantity: 1, UnitPrice: 25.99})
	cart.AddItem(CartItem{ProductID: productID, OptionName: "large", Quantity: 2, UnitPrice: 25.99})

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	// A different option is a separate line.
	cart.AddItem(CartItem{ProductID: productID, OptionName: "Small", Quantity: 1, UnitPrice: 19.99})
	assert.Len(t, cart.Items, 2)
}

func TestCartState_Subtotal(t *testing.T) {
	cart := &CartState{Items: []CartItem{
		{Quantity: 2, UnitPrice: 25.99},
		{Quantity: 1, UnitPrice: 12.00},
	}}

	assert.InDelta(t, 63.98, cart.Subtotal(), 0.001)
}

func TestCartState_Reconcile(t *testing.T) {
	keptID := uuid.New()
	removedID := uuid.New()
	addedID := uuid.New()

	cart := &CartState{
		SessionID: "vf-session-1",
		Items: []CartItem{
			{ProductID: keptID, Quantity: 1, UnitPrice: 19.99},
			{ProductID: removedID, Quantity: 2, UnitPrice: 12.00},
		},
	}
	incoming := &CartState{
		Items: []CartItem{
			{ProductID: keptID, Quantity: 3, UnitPrice: 19.99},
			{ProductID: addedID, Quantity: 1, UnitPrice: 55.00},
		},
	}

	reconciled, ops := cart.Reconcile(incoming)

	assert.Equal(t, "vf-session-1", reconciled.SessionID)
	require.Len(t, reconciled.Items, 2)
	require.Len(t, ops, 3)

	assert.Equal(t, CartOpUpdate, ops[0].Kind)
	assert.Equal(t, keptID, ops[0].ProductID)
	assert.Equal(t, 1, ops[0].FromQuantity)
	assert.Equal(t, 3, ops[0].ToQuantity)

	assert.Equal(t, CartOpAdd, ops[1].Kind)
	assert.Equal(t, addedID, ops[1].ProductID)
	assert.Equal(t, 1, ops[1].ToQuantity)

	assert.Equal(t, CartOpRemove, ops[2].Kind)
	assert.Equal(t, removedID, ops[2].ProductID)
	assert.Equal(t, 2, ops[2].FromQuantity)

	// The receiver is untouched.
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartState_Reconcile_CoalescesDuplicateSnapshotLines(t *testing.T) {
	productID := uuid.New()
	cart := &CartState{Items: []CartItem{{ProductID: productID, Quantity: 1, UnitPrice: 12.00}}}
	incoming := &CartState{Items: []CartItem{
		{ProductID: productID, Quantity: 2, UnitPrice: 12.00},
		{ProductID: productID, Quantity: 2, UnitPrice: 12.00},
	}}

	reconciled, ops := cart.Reconcile(incoming)

	require.Len(t, reconciled.Items, 1)
	assert.Equal(t, 4, reconciled.Items[0].Quantity)

	require.Len(t, ops, 1)
	assert.Equal(t, CartOpUpdate, ops[0].Kind)
	assert.Equal(t, 1, ops[0].FromQuantity)
	assert.Equal(t, 4, ops[0].ToQuantity)
}

func TestCartState_Reconcile_NoChanges(t *testing.T) {
	productID := uuid.New()
	cart := &CartState{Items: []CartItem{{ProductID: productID, Quantity: 2}}}
	incoming := &CartState{Items: []CartItem{{ProductID: productID, Quantity: 2}}}

	_, ops := cart.Reconcile(incoming)
	assert.Empty(t, ops)
}

func TestCartState_FindItem(t *testing.T) {
	productID := uuid.New()
	cart := &CartState{Items: []CartItem{{ProductID: productID, OptionName: "Large"}}}

	assert.Equal(t, 0, cart.FindItem(productID, "LARGE"))
	assert.Equal(t, -1, cart.FindItem(productID, "Small"))
	assert.Equal(t, -1, cart.FindItem(uuid.New(), "Large"))
}
