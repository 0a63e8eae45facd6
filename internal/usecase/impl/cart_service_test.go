package impl

import (
	"context"
	"testing"

	"orchard/internal/domain/entity"
	domainerrors "orchard/internal/domain/errors"
	"orchard/internal/domain/repository"
	mockRepo "orchard/internal/mocks/repository"
	"orchard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService(t *testing.T) (usecase.CartUsecase, *mockRepo.MockProductRepository) {
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(CartServiceParams{
		ProductRepo: productRepo,
		Config:      newTestConfig(),
	})

	return service, productRepo
}

func TestCartService_AddItem_ByCodeMergesQuantities(t *testing.T) {
	service, productRepo := newCartService(t)
	ctx := context.Background()

	product := newTestProduct(1200, "Apple Pie", 19.99,
		entity.ProductOption{Name: "Large", PriceDelta: 6.00})

	productRepo.EXPECT().FindByCode(ctx, 1200).Return(product, nil)

	cart := &entity.CartState{
		SessionID: "vf-session-1",
		Items: []entity.CartItem{{
			ProductID:   product.ID,
			ProductCode: 1200,
			ProductName: "Apple Pie",
			OptionName:  "Large",
			Quantity:    1,
			UnitPrice:   25.99,
		}},
	}

	got, err := service.AddItem(ctx, &usecase.CartAddInput{
		Cart: cart,
		Item: usecase.OrderItemInput{
			ProductCode: 1200,
			OptionName:  "large",
			Quantity:    2,
		},
	})
	require.NoError(t, err)

	require.Len(t, got.Items, 1)
	assert.Equal(t, 3, got.Items[0].Quantity)

	// The input cart is never mutated.
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartService_AddItem_UnknownOption(t *testing.T) {
	service, productRepo := newCartService(t)
	ctx := context.Background()

	product := newTestProduct(1200, "Apple Pie", 19.99)

	productRepo.EXPECT().FindByCode(ctx, 1200).Return(product, nil)

	_, err := service.AddItem(ctx, &usecase.CartAddInput{
		Item: usecase.OrderItemInput{
			ProductCode: 1200,
			OptionName:  "Deluxe",
			Quantity:    1,
		},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PRODUCT_OPTION_NOT_FOUND", appErr.ErrorCode())
}

func TestCartService_AddItem_RejectsZeroQuantity(t *testing.T) {
	service, _ := newCartService(t)

	_, err := service.AddItem(context.Background(), &usecase.CartAddInput{
		Item: usecase.OrderItemInput{ProductCode: 1200, Quantity: 0},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCartService_ValidateCart_ReportsIssues(t *testing.T) {
	service, productRepo := newCartService(t)
	ctx := context.Background()

	goneID := uuid.New()
	repriced := newTestProduct(1300, "Cider", 12.00)
	inactive := newTestProduct(1400, "Seasonal Basket", 45.00)
	inactive.IsActive = false

	productRepo.EXPECT().FindByID(ctx, goneID).Return(nil, repository.ErrProductNotFound)
	productRepo.EXPECT().FindByID(ctx, repriced.ID).Return(repriced, nil)
	productRepo.EXPECT().FindByID(ctx, inactive.ID).Return(inactive, nil)

	cart := &entity.CartState{Items: []entity.CartItem{
		{ProductID: goneID, ProductName: "Old Pie", Quantity: 1, UnitPrice: 19.99},
		{ProductID: repriced.ID, ProductName: "Cider", Quantity: 2, UnitPrice: 10.00},
		{ProductID: inactive.ID, ProductName: "Seasonal Basket", Quantity: 1, UnitPrice: 45.00},
	}}

	issues, err := service.ValidateCart(ctx, cart)
	require.NoError(t, err)
	require.Len(t, issues, 3)

	assert.Equal(t, "product no longer available", issues[0].Problem)
	assert.Equal(t, "Old Pie", issues[0].ProductName)

	assert.Equal(t, "price changed", issues[1].Problem)
	assert.InDelta(t, 10.00, issues[1].OldPrice, 0.001)
	assert.InDelta(t, 12.00, issues[1].NewPrice, 0.001)

	assert.Equal(t, "product no longer available", issues[2].Problem)
}

func TestCartService_Summarize_ShippingThreshold(t *testing.T) {
	service, _ := newCartService(t)
	ctx := context.Background()

	tests := []struct {
		name         string
		unitPrice    float64
		quantity     int
		wantShipping float64
		wantFree     bool
	}{
		{name: "below threshold pays shipping", unitPrice: 20.00, quantity: 2, wantShipping: 9.99, wantFree: false},
		{name: "at threshold ships free", unitPrice: 65.00, quantity: 1, wantShipping: 0, wantFree: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &entity.CartState{Items: []entity.CartItem{{
				ProductID: uuid.New(),
				Quantity:  tt.quantity,
				UnitPrice: tt.unitPrice,
			}}}

			summary, err := service.Summarize(ctx, cart)
			require.NoError(t, err)

			subtotal := tt.unitPrice * float64(tt.quantity)
			assert.InDelta(t, subtotal, summary.Subtotal, 0.001)
			assert.InDelta(t, tt.wantShipping, summary.ShippingFee, 0.001)
			assert.Equal(t, tt.wantFree, summary.FreeShipping)
			assert.Equal(t, tt.quantity, summary.ItemCount)
		})
	}
}

func TestCartService_Reconcile_DiffOps(t *testing.T) {
	service, productRepo := newCartService(t)
	ctx := context.Background()

	kept := newTestProduct(1200, "Apple Pie", 19.99)
	removed := newTestProduct(1300, "Cider", 12.00)
	added := newTestProduct(1400, "Fruit Basket", 55.00)

	productRepo.EXPECT().FindByCode(ctx, 1400).Return(added, nil)

	cart := &entity.CartState{
		SessionID: "vf-session-1",
		Items: []entity.CartItem{
			{ProductID: kept.ID, ProductCode: 1200, ProductName: "Apple Pie", Quantity: 1, UnitPrice: 19.99},
			{ProductID: removed.ID, ProductCode: 1300, ProductName: "Cider", Quantity: 2, UnitPrice: 12.00},
		},
	}
	incoming := &entity.CartState{
		Items: []entity.CartItem{
			{ProductID: kept.ID, Quantity: 3},
			{ProductCode: 1400, Quantity: 1},
		},
	}

	result, err := service.Reconcile(ctx, cart, incoming)
	require.NoError(t, err)

	// Session id survives a snapshot that omits it.
	assert.Equal(t, "vf-session-1", result.Cart.SessionID)
	require.Len(t, result.Cart.Items, 2)

	// The known line keeps its resolved pricing at the new quantity.
	assert.Equal(t, kept.ID, result.Cart.Items[0].ProductID)
	assert.Equal(t, 3, result.Cart.Items[0].Quantity)
	assert.InDelta(t, 19.99, result.Cart.Items[0].UnitPrice, 0.001)

	// The new line is priced from the catalog.
	assert.Equal(t, added.ID, result.Cart.Items[1].ProductID)
	assert.InDelta(t, 55.00, result.Cart.Items[1].UnitPrice, 0.001)

	kinds := make(map[entity.CartOpKind]int, len(result.Ops))
	for _, op := range result.Ops {
		kinds[op.Kind]++
	}
	assert.Equal(t, 1, kinds[entity.CartOpUpdate])
	assert.Equal(t, 1, kinds[entity.CartOpAdd])
	assert.Equal(t, 1, kinds[entity.CartOpRemove])
}

func TestCartService_RefreshCart_RepricesLines(t *testing.T) {
	service, productRepo := newCartService(t)
	ctx := context.Background()

	product := newTestProduct(1300, "Cider Deluxe", 14.50)

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	cart := &entity.CartState{
		SessionID: "vf-session-1",
		Items: []entity.CartItem{{
			ProductID:   product.ID,
			ProductName: "Cider",
			Quantity:    2,
			UnitPrice:   12.00,
		}},
	}

	refreshed, err := service.RefreshCart(ctx, cart)
	require.NoError(t, err)

	require.Len(t, refreshed.Items, 1)
	assert.Equal(t, "Cider Deluxe", refreshed.Items[0].ProductName)
	assert.InDelta(t, 14.50, refreshed.Items[0].UnitPrice, 0.001)
	assert.Equal(t, 2, refreshed.Items[0].Quantity)
}
