package repository

import (
	"context"

	"orchard/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductRepository defines read operations for the product catalog.
// Options are always loaded with their product.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByCode resolves a product by its four-digit chatbot code.
	FindByCode(ctx context.Context, code int) (*entity.Product, error)

	// FindByName resolves an active product by name, case-insensitively.
	FindByName(ctx context.Context, name string) (*entity.Product, error)

	FindActive(ctx context.Context) ([]*entity.Product, error)
}
