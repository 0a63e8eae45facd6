package impl

import (
	"context"
	"fmt"

	"orchard/config"
	"orchard/internal/domain/entity"
	domainerrors "orchard/internal/domain/errors"
	"orchard/internal/domain/repository"
	"orchard/internal/usecase"
	"orchard/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	productRepo repository.ProductRepository
	config      *config.Config
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Config      *config.Config
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		productRepo: params.ProductRepo,
		config:      params.Config,
	}
}

// AddItem resolves the product and option, prices the line, and merges it
// into a copy of the cart.
func (s *cartService) AddItem(ctx context.Context, input *usecase.CartAddInput) (*entity.CartState, error) {
	line, err := s.resolveCartLine(ctx, input.Item)
	if err != nil {
		return nil, err
	}

	cart := cloneCart(input.Cart)
	cart.AddItem(line)

	return cart, nil
}

// RefreshCart re-resolves every line against the catalog, updating names and
// prices while keeping quantities.
func (s *cartService) RefreshCart(ctx context.Context, cart *entity.CartState) (*entity.CartState, error) {
	refreshed := &entity.CartState{SessionID: cart.SessionID}

	for _, item := range cart.Items {
		line, err := s.resolveCartLine(ctx, usecase.OrderItemInput{
			ProductID:  item.ProductID.String(),
			OptionName: item.OptionName,
			Quantity:   item.Quantity,
		})
		if err != nil {
			return nil, err
		}
		refreshed.Items = append(refreshed.Items, line)
	}

	return refreshed, nil
}

// ValidateCart reports lines whose product, option, or price no longer
// matches the catalog.
func (s *cartService) ValidateCart(ctx context.Context, cart *entity.CartState) ([]usecase.CartIssue, error) {
	issues := make([]usecase.CartIssue, 0)

	for _, item := range cart.Items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				issues = append(issues, usecase.CartIssue{
					ProductName: item.ProductName,
					OptionName:  item.OptionName,
					Problem:     "product no longer available",
				})

				continue
			}

			return nil, errors.Wrap(err, "failed to find product")
		}

		if !product.IsActive {
			issues = append(issues, usecase.CartIssue{
				ProductName: product.Name,
				OptionName:  item.OptionName,
				Problem:     "product no longer available",
			})

			continue
		}

		var option *entity.ProductOption
		if item.OptionName != "" {
			found, ok := product.FindOption(item.OptionName)
			if !ok {
				issues = append(issues, usecase.CartIssue{
					ProductName: product.Name,
					OptionName:  item.OptionName,
					Problem:     "option no longer available",
				})

				continue
			}
			option = found
		}

		currentPrice := product.OptionPrice(option)
		if util.RoundMoney(currentPrice) != util.RoundMoney(item.UnitPrice) {
			issues = append(issues, usecase.CartIssue{
				ProductName: product.Name,
				OptionName:  item.OptionName,
				Problem:     "price changed",
				OldPrice:    item.UnitPrice,
				NewPrice:    currentPrice,
			})
		}
	}

	return issues, nil
}

// Summarize computes the priced view of the cart with tax and shipping.
func (s *cartService) Summarize(ctx context.Context, cart *entity.CartState) (*usecase.CartSummary, error) {
	subtotal := util.RoundMoney(cart.Subtotal())
	tax, shippingFee, total := computeTotals(s.config.Checkout, subtotal)

	itemCount := 0
	for _, item := range cart.Items {
		itemCount += item.Quantity
	}

	return &usecase.CartSummary{
		Items:        cart.Items,
		ItemCount:    itemCount,
		Subtotal:     subtotal,
		Tax:          tax,
		ShippingFee:  shippingFee,
		Total:        total,
		FreeShipping: shippingFee == 0,
	}, nil
}

// Reconcile diffs the cart against an incoming snapshot, prices any new
// lines, and returns the reconciled state with the operations applied.
func (s *cartService) Reconcile(ctx context.Context, cart, incoming *entity.CartState) (*usecase.CartReconcileResult, error) {
	priced := &entity.CartState{SessionID: incoming.SessionID}
	if priced.SessionID == "" {
		priced.SessionID = cart.SessionID
	}

	for _, item := range incoming.Items {
		// Lines the current cart already carries keep their resolved pricing;
		// unknown lines are resolved against the catalog.
		if idx := cart.FindItem(item.ProductID, item.OptionName); idx >= 0 {
			known := cart.Items[idx]
			known.Quantity = item.Quantity
			priced.Items = append(priced.Items, known)

			continue
		}

		input := usecase.OrderItemInput{
			ProductCode: item.ProductCode,
			ProductName: item.ProductName,
			OptionName:  item.OptionName,
			Quantity:    item.Quantity,
		}
		if item.ProductID != uuid.Nil {
			input.ProductID = item.ProductID.String()
		}
		line, err := s.resolveCartLine(ctx, input)
		if err != nil {
			return nil, err
		}
		priced.Items = append(priced.Items, line)
	}

	reconciled, ops := cart.Reconcile(priced)

	return &usecase.CartReconcileResult{Cart: reconciled, Ops: ops}, nil
}

// resolveCartLine resolves one requested line to a priced cart item.
func (s *cartService) resolveCartLine(ctx context.Context, in usecase.OrderItemInput) (entity.CartItem, error) {
	if in.Quantity <= 0 {
		return entity.CartItem{}, domainerrors.ErrValidationFailed.WithDetails("item quantity must be positive")
	}

	product, err := resolveProduct(ctx, s.productRepo, in)
	if err != nil {
		return entity.CartItem{}, err
	}

	var option *entity.ProductOption
	optionName := ""
	if in.OptionName != "" {
		found, ok := product.FindOption(in.OptionName)
		if !ok {
			return entity.CartItem{}, domainerrors.ErrProductOptionNotFound.WithDetails(
				fmt.Sprintf("product %q has no option %q", product.Name, in.OptionName))
		}
		option = found
		optionName = found.Name
	}

	return entity.CartItem{
		ProductID:   product.ID,
		ProductCode: product.Code,
		ProductName: product.Name,
		OptionName:  optionName,
		Quantity:    in.Quantity,
		UnitPrice:   product.OptionPrice(option),
	}, nil
}

// cloneCart copies the cart so callers never observe shared mutable state.
func cloneCart(cart *entity.CartState) *entity.CartState {
	if cart == nil {
		return &entity.CartState{}
	}

	clone := &entity.CartState{SessionID: cart.SessionID}
	clone.Items = append(clone.Items, cart.Items...)

	return clone
}
