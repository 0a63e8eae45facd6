// Package auth provides concrete implementations for token-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"orchard/config"
	"orchard/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string // Secret key for signing access tokens.
	paymentSecret string // Secret key for signing payment link tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Payment == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		paymentSecret: cfg.SecretKey.Payment,
	}, nil
}

// GeneratePaymentToken creates a single-purpose token carried in a payment link.
// The token binds the order ID and the charged amount so a tampered link fails
// validation at the payment page.
func (s *jwtService) GeneratePaymentToken(orderID uuid.UUID, amount float64, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":    orderID,                    // Subject (the order being paid)
		"amount": amount,                     // Amount the link authorizes
		"iat":    time.Now().Unix(),          // Issued At
		"exp":    time.Now().Add(ttl).Unix(), // Expiration Time
		"type":   "payment",                  // Type of token
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.paymentSecret))
}

// ValidateToken checks the validity of a token string against a secret.
func (s *jwtService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
}
