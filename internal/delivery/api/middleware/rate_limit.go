package middleware

import (
	"log/slog"
	"time"

	"orchard/config"
	"orchard/internal/delivery/api/response"
	domainerrors "orchard/internal/domain/errors"
	"orchard/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware enforces a fixed-window request limit per client and
// endpoint, backed by a database counter so all instances share the window.
type RateLimitMiddleware struct {
	repo        repository.RateLimitRepository
	logger      *slog.Logger
	enabled     bool
	maxRequests int
	window      time.Duration
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(repo repository.RateLimitRepository, cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		repo:   repo,
		logger: logger,
	}
	if cfg.RateLimit != nil {
		m.enabled = cfg.RateLimit.Enabled
		m.maxRequests = cfg.RateLimit.MaxRequests
		m.window = cfg.RateLimit.Window
	}
	if m.window <= 0 {
		m.window = time.Minute
	}

	return m
}

// Limit counts the request against the client's current window and rejects it
// once the window's budget is exhausted. Counter failures let the request
// through; rate limiting must never take the API down with it.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		identifier := c.RealIP()
		endpoint := c.Request().Method + " " + c.Path()
		windowStart := time.Now().Truncate(m.window)

		window, err := m.repo.IncrementAndCount(c.Request().Context(), identifier, endpoint, windowStart)
		if err != nil {
			m.logger.Warn("rate limit counter unavailable",
				slog.String("identifier", identifier),
				slog.String("endpoint", endpoint),
				slog.Any("error", err),
			)

			return next(c)
		}

		if window.RequestCount > m.maxRequests {
			limitErr := domainerrors.ErrRateLimitExceeded

			return response.Error(c, limitErr.HTTPCode(), limitErr.ErrorCode(), limitErr.Message(), nil)
		}

		return next(c)
	}
}
