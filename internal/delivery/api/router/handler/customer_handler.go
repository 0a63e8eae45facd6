package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"orchard/internal/delivery/api/response"
	"orchard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler holds dependencies for customer-related handlers
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// EnsureCustomerRequest represents the request body for customer resolution
type EnsureCustomerRequest struct {
	Phone       string         `json:"phone"`
	Email       string         `json:"email" validate:"omitempty,email"`
	Name        string         `json:"name"`
	AuthUserID  *uuid.UUID     `json:"auth_user_id"`
	SessionID   string         `json:"session_id"`
	Allergies   []string       `json:"allergies"`
	Dietary     []string       `json:"dietary_restrictions"`
	Preferences map[string]any `json:"preferences"`
}

// MergeRequest represents the request body for merge check and merge
type MergeRequest struct {
	Phone  string `json:"phone" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Source string `json:"source"`
}

// EnsureCustomer resolves or creates the customer for a chatbot interaction
func (h *CustomerHandler) EnsureCustomer(c echo.Context) error {
	var req EnsureCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	result, err := h.customerUC.EnsureCustomer(c.Request().Context(), &usecase.EnsureCustomerInput{
		Phone:      req.Phone,
		Email:      req.Email,
		Name:       req.Name,
		AuthUserID: req.AuthUserID,
		SessionID:  req.SessionID,
		Allergies:  req.Allergies,
		Dietary:    req.Dietary,
		Prefs:      req.Preferences,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	statusCode := http.StatusOK
	if result.Created {
		statusCode = http.StatusCreated
	}

	return response.Success(c, statusCode, map[string]any{
		"customer": result.Customer,
		"created":  result.Created,
	})
}

// CheckMerge reports whether two customer identities can be unified
func (h *CustomerHandler) CheckMerge(c echo.Context) error {
	var req MergeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merge input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	result, err := h.customerUC.CheckMergeCompatibility(c.Request().Context(), req.Phone, req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Merge unifies a phone-keyed and an email-keyed customer identity
func (h *CustomerHandler) Merge(c echo.Context) error {
	var req MergeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merge input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	result, err := h.customerUC.MergeAccounts(c.Request().Context(), req.Phone, req.Email, req.Source)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetCustomerOrders returns the customer's most recent orders
func (h *CustomerHandler) GetCustomerOrders(c echo.Context) error {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid limit")
		}
	}

	orders, err := h.customerUC.GetCustomerOrders(c.Request().Context(), customerID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"orders": orders,
		"count":  len(orders),
	})
}
