package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipientAddressModel is the GORM-specific struct for the 'recipient_addresses' table.
type RecipientAddressModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID          uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientName       string
	RecipientPhone      string
	Street              string    `gorm:"not null"`
	City                string    `gorm:"not null"`
	State               string    `gorm:"not null"`
	ZipCode             string    `gorm:"not null"`
	SpecialInstructions string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipientAddressModel) TableName() string {
	return "recipient_addresses"
}
