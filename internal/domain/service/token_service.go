package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines JWT operations: access tokens for profile endpoints
// and single-purpose payment link tokens.
type TokenService interface {
	// GeneratePaymentToken creates a signed token embedded in a payment link.
	GeneratePaymentToken(orderID uuid.UUID, amount float64, ttl time.Duration) (string, error)

	// ValidateToken checks a token string against a secret and returns the
	// parsed token.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
