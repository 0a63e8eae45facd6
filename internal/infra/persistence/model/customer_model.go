// Package model contains the GORM-specific structs mapping to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID                  uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email               string                      `gorm:"not null;uniqueIndex"`
	Phone               string                      `gorm:"index"`
	Name                string
	Allergies           datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	DietaryRestrictions datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Preferences         datatypes.JSONMap           `gorm:"type:jsonb"`
	AuthUserID          *uuid.UUID                  `gorm:"type:uuid;index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
