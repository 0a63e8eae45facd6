package repository

import (
	"context"

	"orchard/internal/domain/entity"

	"github.com/google/uuid"
)

// StoreRepository defines read operations for retail stores.
type StoreRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindDefault returns the store that fulfills chatbot orders when no
	// store is specified.
	FindDefault(ctx context.Context) (*entity.Store, error)
}
