package repository

import (
	"context"
	"time"

	"orchard/internal/domain/entity"
)

// RateLimitRepository defines the fixed-window counter operations backing the
// rate limit middleware.
type RateLimitRepository interface {
	// IncrementAndCount purges expired windows for the identifier/endpoint
	// pair, increments the current window's counter (creating it when
	// absent), and returns the resulting window state.
	IncrementAndCount(ctx context.Context, identifier, endpoint string, windowStart time.Time) (*entity.RateLimit, error)
}
