// Package router contains routing setup for the API delivery.
package router

import (
	"orchard/config"
	"orchard/internal/delivery/api/middleware"
	"orchard/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler        *handler.OrderHandler
	CustomerHandler     *handler.CustomerHandler
	CartHandler         *handler.CartHandler
	ProfileHandler      *handler.ProfileHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler        *handler.OrderHandler
	customerHandler     *handler.CustomerHandler
	cartHandler         *handler.CartHandler
	profileHandler      *handler.ProfileHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:        params.OrderHandler,
		customerHandler:     params.CustomerHandler,
		cartHandler:         params.CartHandler,
		profileHandler:      params.ProfileHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Chatbot-facing API routes share the fixed-window rate limit
	api := e.Group("/api")
	api.Use(r.rateLimitMiddleware.Limit)

	// Order management routes
	ordersGroup := api.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("", r.orderHandler.GetOrder)
		ordersGroup.PATCH("", r.orderHandler.UpdateOrder)
	}

	// Customer management routes
	customersGroup := api.Group("/customers")
	{
		customersGroup.POST("/ensure", r.customerHandler.EnsureCustomer)
		customersGroup.POST("/merge/check", r.customerHandler.CheckMerge)
		customersGroup.POST("/merge", r.customerHandler.Merge)
		customersGroup.GET("/:id/orders", r.customerHandler.GetCustomerOrders)
	}

	// Cart endpoint; state lives with the chatbot, actions are tagged
	api.POST("/cart", r.cartHandler.HandleCart)

	// Profile routes require an authenticated customer
	profileGroup := api.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PATCH("", r.profileHandler.UpdateProfile)
	}
}
