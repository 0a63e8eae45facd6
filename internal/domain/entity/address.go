package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecipientAddress is a delivery destination referenced by an order.
type RecipientAddress struct {
	ID                  uuid.UUID `json:"id"`
	CustomerID          uuid.UUID `json:"customer_id"`
	RecipientName       string    `json:"recipient_name"`
	RecipientPhone      string    `json:"recipient_phone"`
	Street              string    `json:"street"`
	City                string    `json:"city"`
	State               string    `json:"state"`
	ZipCode             string    `json:"zip_code"`
	SpecialInstructions string    `json:"special_instructions"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
