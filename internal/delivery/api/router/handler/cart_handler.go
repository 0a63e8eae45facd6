package handler

import (
	"log/slog"
	"net/http"

	"orchard/internal/delivery/api/response"
	"orchard/internal/domain/entity"
	"orchard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// CartRequest is the action-tagged request body for the cart endpoint. The
// chatbot owns the cart state and sends it with every call.
type CartRequest struct {
	Action   string                  `json:"action" validate:"required,oneof=add get validate summary reconcile"`
	Cart     *entity.CartState       `json:"cart"`
	Item     *usecase.OrderItemInput `json:"item"`
	Incoming *entity.CartState       `json:"incoming"`
}

// HandleCart dispatches one cart action
func (h *CartHandler) HandleCart(c echo.Context) error {
	var req CartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	if req.Cart == nil {
		req.Cart = &entity.CartState{}
	}

	ctx := c.Request().Context()

	switch req.Action {
	case usecase.CartActionAdd:
		if req.Item == nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "add requires an item")
		}
		cart, err := h.cartUC.AddItem(ctx, &usecase.CartAddInput{Cart: req.Cart, Item: *req.Item})
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, map[string]any{"cart": cart})

	case usecase.CartActionGet:
		cart, err := h.cartUC.RefreshCart(ctx, req.Cart)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, map[string]any{"cart": cart})

	case usecase.CartActionValidate:
		issues, err := h.cartUC.ValidateCart(ctx, req.Cart)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, map[string]any{
			"valid":  len(issues) == 0,
			"issues": issues,
		})

	case usecase.CartActionSummary:
		summary, err := h.cartUC.Summarize(ctx, req.Cart)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, summary)

	case usecase.CartActionReconcile:
		if req.Incoming == nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "reconcile requires an incoming cart")
		}
		result, err := h.cartUC.Reconcile(ctx, req.Cart, req.Incoming)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, result)

	default:
		return response.BadRequest(c, "VALIDATION_FAILED", "unknown cart action")
	}
}
