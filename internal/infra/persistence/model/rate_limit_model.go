package model

import (
	"time"

	"github.com/google/uuid"
)

// RateLimitModel is the GORM-specific struct for the 'api_rate_limits' table.
type RateLimitModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Identifier   string    `gorm:"not null;index:idx_rate_limit_key,priority:1"`
	Endpoint     string    `gorm:"not null;index:idx_rate_limit_key,priority:2"`
	WindowStart  time.Time `gorm:"not null"`
	RequestCount int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (RateLimitModel) TableName() string {
	return "api_rate_limits"
}
