package repository

import (
	"context"
	"time"

	"github.com/webatelier/landing-api/internal/domain/entity"
)

// ReviewRepository defines the persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	// ListApproved returns approved reviews, newest first, capped at limit.
	ListApproved(ctx context.Context, limit int64) ([]entity.Review, error)
	// FindRecentByEmail returns the most recent review from the given
	// normalized email created at or after since, or nil when none exists.
	FindRecentByEmail(ctx context.Context, email string, since time.Time) (*entity.Review, error)
	// Stats computes the live aggregate over approved reviews.
	Stats(ctx context.Context) (*entity.ReviewStats, error)
}
