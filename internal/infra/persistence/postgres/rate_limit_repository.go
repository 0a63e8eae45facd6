package postgres

import (
	"context"
	"time"

	"orchard/internal/domain/entity"
	"orchard/internal/domain/repository"
	"orchard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// rateLimitRepository implements repository.RateLimitRepository backed by the
// api_rate_limits table.
type rateLimitRepository struct {
	db *gorm.DB
}

// NewRateLimitRepository is the constructor for rateLimitRepository.
func NewRateLimitRepository(db *gorm.DB) repository.RateLimitRepository {
	return &rateLimitRepository{
		db: db,
	}
}

// IncrementAndCount purges expired windows, increments the current window's
// counter, and returns the resulting window state. Runs in a short
// transaction so concurrent requests serialize on the counter row.
func (repo *rateLimitRepository) IncrementAndCount(ctx context.Context, identifier, endpoint string, windowStart time.Time) (*entity.RateLimit, error) {
	var row model.RateLimitModel

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Purge stale windows for this key opportunistically.
		if err := tx.
			Where("identifier = ? AND endpoint = ? AND window_start < ?", identifier, endpoint, windowStart).
			Delete(&model.RateLimitModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to purge expired rate limit windows")
		}

		err := tx.
			Where("identifier = ? AND endpoint = ? AND window_start >= ?", identifier, endpoint, windowStart).
			First(&row).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrap(err, "failed to read rate limit window")
			}

			row = model.RateLimitModel{
				Identifier:   identifier,
				Endpoint:     endpoint,
				WindowStart:  windowStart,
				RequestCount: 1,
			}
			if err := tx.Create(&row).Error; err != nil {
				return errors.Wrap(err, "failed to create rate limit window")
			}

			return nil
		}

		row.RequestCount++
		if err := tx.Model(&model.RateLimitModel{}).
			Where("id = ?", row.ID).
			Update("request_count", row.RequestCount).Error; err != nil {
			return errors.Wrap(err, "failed to increment rate limit counter")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &entity.RateLimit{
		ID:           row.ID,
		Identifier:   row.Identifier,
		Endpoint:     row.Endpoint,
		WindowStart:  row.WindowStart,
		RequestCount: row.RequestCount,
	}, nil
}
