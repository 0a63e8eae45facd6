package usecase

import (
	"context"

	"orchard/internal/domain/entity"
)

// Cart actions accepted by the cart endpoint. Each action has its own typed
// payload instead of a loosely shaped map.
const (
	CartActionAdd       = "add"
	CartActionGet       = "get"
	CartActionValidate  = "validate"
	CartActionSummary   = "summary"
	CartActionReconcile = "reconcile"
)

// CartAddInput adds one product line to the cart.
type CartAddInput struct {
	Cart *entity.CartState
	Item OrderItemInput
}

// CartIssue flags one cart line that no longer matches the catalog.
type CartIssue struct {
	ProductName string  `json:"product_name"`
	OptionName  string  `json:"option_name,omitempty"`
	Problem     string  `json:"problem"`
	OldPrice    float64 `json:"old_price,omitempty"`
	NewPrice    float64 `json:"new_price,omitempty"`
}

// CartSummary is the priced view of a cart.
type CartSummary struct {
	Items        []entity.CartItem `json:"items"`
	ItemCount    int               `json:"item_count"`
	Subtotal     float64           `json:"subtotal"`
	Tax          float64           `json:"tax"`
	ShippingFee  float64           `json:"shipping_fee"`
	Total        float64           `json:"total"`
	FreeShipping bool              `json:"free_shipping"`
}

// CartReconcileResult carries the reconciled cart and the operations applied.
type CartReconcileResult struct {
	Cart *entity.CartState `json:"cart"`
	Ops  []entity.CartOp   `json:"operations"`
}

// CartUsecase defines cart manipulation for chatbot sessions. The cart is an
// explicit value owned by the caller; every method returns a new state rather
// than mutating shared storage.
type CartUsecase interface {
	// AddItem resolves the product and option, prices the line, and merges it
	// into the cart.
	AddItem(ctx context.Context, input *CartAddInput) (*entity.CartState, error)

	// RefreshCart re-resolves every line against the catalog, updating names
	// and prices.
	RefreshCart(ctx context.Context, cart *entity.CartState) (*entity.CartState, error)

	// ValidateCart reports lines whose product, option, or price no longer
	// matches the catalog.
	ValidateCart(ctx context.Context, cart *entity.CartState) ([]CartIssue, error)

	// Summarize computes the priced view of the cart with tax and shipping.
	Summarize(ctx context.Context, cart *entity.CartState) (*CartSummary, error)

	// Reconcile diffs the cart against an incoming snapshot, prices any new
	// lines, and returns the reconciled state with the operations applied.
	Reconcile(ctx context.Context, cart, incoming *entity.CartState) (*CartReconcileResult, error)
}
