package handler

import (
	"log/slog"
	"net/http"

	"orchard/internal/delivery/api/middleware"
	"orchard/internal/delivery/api/response"
	"orchard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile-related handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// GetProfile returns the authenticated customer's profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid customer ID in token")
	}

	customer, err := h.profileUC.GetProfile(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// UpdateProfile patches the authenticated customer's profile fields
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid customer ID in token")
	}

	var req usecase.UpdateProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	customer, err := h.profileUC.UpdateProfile(c.Request().Context(), customerID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}
