package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"orchard/config"
	"orchard/internal/domain/entity"
	"orchard/internal/domain/repository"
	mockRepo "orchard/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// newTestConfig builds a config with the standard checkout rules and zero
// settle delays so tests never sleep.
func newTestConfig() *config.Config {
	return &config.Config{
		Checkout: &config.CheckoutConfig{
			TaxRate:               0.0825,
			FreeShippingThreshold: 65.0,
			ShippingFee:           9.99,
			PaymentBaseURL:        "https://pay.example.com/checkout",
			PaymentTokenTTL:       24 * time.Hour,
		},
		Projection: &config.ProjectionConfig{
			CreateSettleDelay: 0,
			UpdateSettleDelay: 0,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction wires the transaction manager mock to run the callback
// against the given factory, committing on nil error.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newTestProduct(code int, name string, basePrice float64, options ...entity.ProductOption) *entity.Product {
	return &entity.Product{
		ID:        uuid.New(),
		Code:      code,
		Name:      name,
		BasePrice: basePrice,
		IsActive:  true,
		Options:   options,
	}
}

func newTestStore(prefix string) *entity.Store {
	return &entity.Store{
		ID:                uuid.New(),
		Name:              "Main Street",
		OrderNumberPrefix: prefix,
		IsActive:          true,
	}
}

func newTestCustomer(phone, email, name string) *entity.Customer {
	return &entity.Customer{
		ID:    uuid.New(),
		Phone: phone,
		Email: email,
		Name:  name,
	}
}
