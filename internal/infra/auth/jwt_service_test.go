package auth

import (
	"testing"
	"time"

	"orchard/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(access, payment string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = access
	cfg.SecretKey.Payment = payment

	return cfg
}

func TestJWTService_GenerateAndValidatePaymentToken(t *testing.T) {
	cfg := testConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_payment_secret_key_very_long_for_testing",
	)

	// Create JWT service
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	// Test data
	orderID := uuid.New()
	amount := 87.42

	// Generate payment token
	tokenString, err := jwtService.GeneratePaymentToken(orderID, amount, time.Hour*24)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	// Validate with the payment secret
	token, err := jwtService.ValidateToken(tokenString, cfg.SecretKey.Payment)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, orderID.String(), claims["sub"])
	assert.InDelta(t, amount, claims["amount"], 0.0001)
	assert.Equal(t, "payment", claims["type"])
}

func TestJWTService_WrongSecret(t *testing.T) {
	cfg := testConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_payment_secret_key_very_long_for_testing",
	)

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	tokenString, err := jwtService.GeneratePaymentToken(uuid.New(), 10.00, time.Hour)
	require.NoError(t, err)

	// Validating a payment token with the access secret must fail
	_, err = jwtService.ValidateToken(tokenString, cfg.SecretKey.Access)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_payment_secret_key_very_long_for_testing",
	)

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	invalidToken := "clearly-not-a-jwt-token-format"
	token, err := jwtService.ValidateToken(invalidToken, cfg.SecretKey.Payment)
	assert.Error(t, err)
	assert.Nil(t, token)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_payment_secret_key_very_long_for_testing",
	)

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	// Negative TTL makes the token already expired
	tokenString, err := jwtService.GeneratePaymentToken(uuid.New(), 10.00, -time.Minute)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(tokenString, cfg.SecretKey.Payment)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	// Should fail to create service
	jwtService, err := NewJWTService(testConfig("", ""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}
