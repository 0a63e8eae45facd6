package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"orchard/internal/delivery/api/response"
	"orchard/internal/domain/entity"
	"orchard/internal/usecase"
	"orchard/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	CustomerPhone       string                        `json:"customer_phone"`
	CustomerEmail       string                        `json:"customer_email"`
	CustomerName        string                        `json:"customer_name"`
	Items               []usecase.OrderItemInput      `json:"items" validate:"required,min=1,dive"`
	FulfillmentType     string                        `json:"fulfillment_type" validate:"omitempty,oneof=delivery pickup"`
	ScheduledDate       string                        `json:"scheduled_date"`
	ScheduledTimeSlot   string                        `json:"scheduled_time_slot"`
	SpecialInstructions string                        `json:"special_instructions"`
	PickupCustomerName  string                        `json:"pickup_customer_name"`
	DeliveryAddress     *usecase.DeliveryAddressInput `json:"delivery_address"`
	OutputType          string                        `json:"outputType" validate:"omitempty,oneof=streamlined json"`
}

// UpdateOrderRequest represents the request body for patching an order.
// The target order is selected in the body, not the path.
type UpdateOrderRequest struct {
	OrderID    string               `json:"orderId" validate:"required,uuid"`
	Updates    usecase.OrderUpdates `json:"updates"`
	OutputType string               `json:"outputType" validate:"omitempty,oneof=streamlined json"`
}

// CreateOrder handles order placement
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	result, err := h.orderUC.CreateOrder(c.Request().Context(), &usecase.CreateOrderInput{
		CustomerPhone:       req.CustomerPhone,
		CustomerEmail:       req.CustomerEmail,
		CustomerName:        req.CustomerName,
		Items:               req.Items,
		FulfillmentType:     req.FulfillmentType,
		ScheduledDate:       req.ScheduledDate,
		ScheduledTimeSlot:   req.ScheduledTimeSlot,
		SpecialInstructions: req.SpecialInstructions,
		PickupCustomerName:  req.PickupCustomerName,
		DeliveryAddress:     req.DeliveryAddress,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, formatOrderResult(result, outputType(req.OutputType)))
}

// UpdateOrder handles patching a modifiable order
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	result, err := h.orderUC.UpdateOrder(c.Request().Context(), &usecase.UpdateOrderInput{
		OrderID: orderID,
		Updates: req.Updates,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, formatOrderResult(result, outputType(req.OutputType)))
}

// GetOrder handles order reads by id, order number, or customer phone
func (h *OrderHandler) GetOrder(c echo.Context) error {
	query := &usecase.OrderQuery{
		OrderNumber:   c.QueryParam("orderNumber"),
		CustomerPhone: c.QueryParam("customerPhone"),
	}
	if raw := c.QueryParam("orderId"); raw != "" {
		orderID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
		}
		query.OrderID = &orderID
	}

	result, err := h.orderUC.GetOrder(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, formatOrderResult(result, outputType(c.QueryParam("outputType"))))
}

// outputType defaults to the chatbot-friendly streamlined view.
func outputType(raw string) usecase.OutputType {
	if usecase.OutputType(raw) == usecase.OutputJSON {
		return usecase.OutputJSON
	}

	return usecase.OutputStreamlined
}

// formatOrderResult renders an order result in the requested output shape.
func formatOrderResult(result *usecase.OrderResult, output usecase.OutputType) any {
	if output == usecase.OutputJSON {
		payload := map[string]any{
			"order":           result.Projection,
			"from_projection": result.FromProjection,
		}
		if result.Payment != nil {
			payload["payment"] = result.Payment
		}

		return payload
	}

	return streamlineOrder(result)
}

// streamlineOrder flattens the projection into the compact view the chatbot
// reads back to customers: formatted money, spelled-out dates, and a single
// delivery address line.
func streamlineOrder(result *usecase.OrderResult) map[string]any {
	p := result.Projection

	view := map[string]any{
		"order_number":     p.OrderNumber,
		"status":           string(p.Status),
		"fulfillment_type": p.FulfillmentType,
		"customer_name":    p.CustomerName,
		"customer_phone":   p.CustomerPhone,
		"items":            p.ItemsSummary,
		"item_count":       p.ItemCount,
		"subtotal":         util.FormatUSD(p.Subtotal),
		"tax":              util.FormatUSD(p.Tax),
		"shipping_fee":     formatShippingFee(p.ShippingFee),
		"total":            util.FormatUSD(p.Total),
	}

	if p.ScheduledDate != "" {
		view["scheduled_date"] = formatScheduledDate(p.ScheduledDate)
	}
	if p.ScheduledTimeSlot != "" {
		view["scheduled_time_slot"] = p.ScheduledTimeSlot
	}
	if p.SpecialInstructions != "" {
		view["special_instructions"] = p.SpecialInstructions
	}
	if p.FulfillmentType == string(entity.FulfillmentPickup) && p.PickupCustomerName != "" {
		view["pickup_customer_name"] = p.PickupCustomerName
	}
	if address := formatDeliveryAddress(p); address != "" {
		view["delivery_address"] = address
		if p.DeliveryInstructions != "" {
			view["delivery_instructions"] = p.DeliveryInstructions
		}
	}
	if result.Payment != nil {
		view["payment_link"] = result.Payment.PaymentURL
	}

	return view
}

func formatShippingFee(fee float64) string {
	if fee == 0 {
		return "Free"
	}

	return util.FormatUSD(fee)
}

// formatScheduledDate spells out an ISO date; unparseable values pass through
// untouched.
func formatScheduledDate(raw string) string {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return raw
	}

	return util.FormatOrderDate(t)
}

func formatDeliveryAddress(p *entity.OrderProjection) string {
	if p.DeliveryStreet == "" {
		return ""
	}

	parts := []string{p.DeliveryStreet, p.DeliveryCity, p.DeliveryState + " " + p.DeliveryZipCode}

	return strings.Join(parts, ", ")
}
