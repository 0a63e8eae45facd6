package entity

import (
	"time"

	"github.com/google/uuid"
)

// RateLimit is one fixed-window request counter row. The window is keyed by
// caller identifier and endpoint; rows outside the window are purged lazily.
type RateLimit struct {
	ID           uuid.UUID `json:"id"`
	Identifier   string    `json:"identifier"`
	Endpoint     string    `json:"endpoint"`
	WindowStart  time.Time `json:"window_start"`
	RequestCount int       `json:"request_count"`
}
