package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store is a physical retail location. Each store owns an order number
// sequence identified by its prefix.
type Store struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	OrderNumberPrefix string    `json:"order_number_prefix"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
