package entity

import (
	"strings"

	"github.com/google/uuid"
)

// CartItem is one product line in a cart. Option is matched by name so the
// chatbot can reference variants the way customers say them.
type CartItem struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductCode int       `json:"product_code"`
	ProductName string    `json:"product_name"`
	OptionName  string    `json:"option_name,omitempty"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
}

// LineTotal returns the extended price for the line.
func (i CartItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// CartState is the authoritative cart for one conversation session. It is an
// explicit value passed through the call chain; reconciliation against an
// incoming snapshot is a diff-and-patch, never an in-place mutation of shared
// state.
type CartState struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
}

// CartOpKind identifies one reconciliation operation.
type CartOpKind string

const (
	CartOpAdd    CartOpKind = "add"
	CartOpUpdate CartOpKind = "update"
	CartOpRemove CartOpKind = "remove"
)

// CartOp describes a single change produced by reconciliation.
type CartOp struct {
	Kind         CartOpKind `json:"kind"`
	ProductID    uuid.UUID  `json:"product_id"`
	OptionName   string     `json:"option_name,omitempty"`
	FromQuantity int        `json:"from_quantity,omitempty"`
	ToQuantity   int        `json:"to_quantity,omitempty"`
}

// lineKey identifies a cart line by product and option.
func lineKey(productID uuid.UUID, optionName string) string {
	return productID.String() + "|" + strings.ToLower(optionName)
}

// FindItem returns the index of the line matching product and option, or -1.
func (s *CartState) FindItem(productID uuid.UUID, optionName string) int {
	for i := range s.Items {
		if s.Items[i].ProductID == productID && strings.EqualFold(s.Items[i].OptionName, optionName) {
			return i
		}
	}

	return -1
}

// AddItem merges the given line into the cart, summing quantities for an
// existing product/option pair.
func (s *CartState) AddItem(item CartItem) {
	if idx := s.FindItem(item.ProductID, item.OptionName); idx >= 0 {
		s.Items[idx].Quantity += item.Quantity

		return
	}

	s.Items = append(s.Items, item)
}

// Subtotal sums the line totals of all items.
func (s *CartState) Subtotal() float64 {
	var subtotal float64
	for _, item := range s.Items {
		subtotal += item.LineTotal()
	}

	return subtotal
}

// Reconcile diffs the cart against an incoming snapshot and returns both the
// reconciled state and the minimal set of operations that transform this cart
// into the snapshot. The receiver is not mutated.
func (s *CartState) Reconcile(incoming *CartState) (*CartState, []CartOp) {
	current := make(map[string]CartItem, len(s.Items))
	for _, item := range s.Items {
		current[lineKey(item.ProductID, item.OptionName)] = item
	}

	// Coalesce snapshot lines that share a product/option key so a duplicated
	// line yields one merged op instead of a spurious add.
	incomingItems := make([]CartItem, 0, len(incoming.Items))
	seen := make(map[string]int, len(incoming.Items))
	for _, item := range incoming.Items {
		key := lineKey(item.ProductID, item.OptionName)
		if i, ok := seen[key]; ok {
			incomingItems[i].Quantity += item.Quantity
			continue
		}
		seen[key] = len(incomingItems)
		incomingItems = append(incomingItems, item)
	}

	result := &CartState{SessionID: s.SessionID}
	ops := make([]CartOp, 0)

	for _, item := range incomingItems {
		key := lineKey(item.ProductID, item.OptionName)
		prev, exists := current[key]
		switch {
		case !exists:
			ops = append(ops, CartOp{
				Kind:       CartOpAdd,
				ProductID:  item.ProductID,
				OptionName: item.OptionName,
				ToQuantity: item.Quantity,
			})
		case prev.Quantity != item.Quantity:
			ops = append(ops, CartOp{
				Kind:         CartOpUpdate,
				ProductID:    item.ProductID,
				OptionName:   item.OptionName,
				FromQuantity: prev.Quantity,
				ToQuantity:   item.Quantity,
			})
		}
		delete(current, key)
		result.Items = append(result.Items, item)
	}

	// Anything left in current was removed from the incoming snapshot.
	for _, item := range s.Items {
		if _, removed := current[lineKey(item.ProductID, item.OptionName)]; removed {
			ops = append(ops, CartOp{
				Kind:         CartOpRemove,
				ProductID:    item.ProductID,
				OptionName:   item.OptionName,
				FromQuantity: item.Quantity,
			})
		}
	}

	return result, ops
}
