package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/webatelier/landing-api/internal/domain/entity"
	repo "github.com/webatelier/landing-api/internal/domain/repository"
)

// ErrRateLimited marks the per-email review throttle. It is advisory; the
// caller should retry after the window, not treat it as permanent.
var ErrRateLimited = errors.New("rate limited")

// ReviewService orchestrates the review write path: normalize, spam-gate,
// persist, recompute the live aggregate.
type ReviewService struct {
	Repo   repo.ReviewRepository
	Logger *logrus.Logger
}

func NewReviewService(r repo.ReviewRepository, logger *logrus.Logger) *ReviewService {
	return &ReviewService{Repo: r, Logger: logger}
}

type SubmitReviewInput struct {
	Name    string
	Email   string
	Rating  int
	Comment string
}

// Submit persists an auto-approved review unless the same normalized email
// already submitted within the spam window. Two submissions racing inside the
// same instant may both land; that window is accepted, not serialized.
func (s *ReviewService) Submit(ctx context.Context, in SubmitReviewInput) (*entity.Review, *entity.ReviewStats, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	since := time.Now().UTC().Add(-entity.SpamWindow)
	recent, err := s.Repo.FindRecentByEmail(ctx, email, since)
	if err != nil {
		return nil, nil, err
	}
	if recent != nil {
		return nil, nil, ErrRateLimited
	}

	review := &entity.Review{
		Name:    strings.TrimSpace(in.Name),
		Email:   email,
		Rating:  in.Rating,
		Comment: strings.TrimSpace(in.Comment),
		// Auto-approve; a moderation workflow would set pending here instead.
		Status: entity.ReviewStatusApproved,
	}
	if err := s.Repo.Create(ctx, review); err != nil {
		return nil, nil, err
	}

	stats, err := s.Repo.Stats(ctx)
	if err != nil {
		return nil, nil, err
	}
	return review, stats, nil
}

// List returns approved reviews, newest first, capped at the public limit,
// with the current aggregate.
func (s *ReviewService) List(ctx context.Context) ([]entity.Review, *entity.ReviewStats, error) {
	reviews, err := s.Repo.ListApproved(ctx, entity.ListLimit)
	if err != nil {
		return nil, nil, err
	}
	stats, err := s.Repo.Stats(ctx)
	if err != nil {
		return nil, nil, err
	}
	return reviews, stats, nil
}

// Stats returns the live aggregate alone.
func (s *ReviewService) Stats(ctx context.Context) (*entity.ReviewStats, error) {
	return s.Repo.Stats(ctx)
}
