package middleware

import (
	"strings"

	"orchard/config"
	"orchard/internal/delivery/api/response"
	"orchard/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const contextKeyCustomerID = "customerID"

// AuthMiddleware validates JWT access tokens on profile endpoints.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the bearer token and stores the customer id on the
// request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Failed to parse token claims")
		}

		customerIDStr, ok := claims["sub"].(string)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Customer ID missing from token")
		}
		customerID, err := uuid.Parse(customerIDStr)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid customer ID format in token")
		}

		c.Set(contextKeyCustomerID, customerID)

		return next(c)
	}
}

// GetCustomerID returns the authenticated customer id set by Authenticate.
func GetCustomerID(c echo.Context) (uuid.UUID, bool) {
	customerID, ok := c.Get(contextKeyCustomerID).(uuid.UUID)

	return customerID, ok
}
