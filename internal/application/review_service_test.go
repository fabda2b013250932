package application

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/webatelier/landing-api/internal/domain/entity"
)

// --- Mock Repository ---

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) Create(ctx context.Context, r *entity.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *mockReviewRepository) ListApproved(ctx context.Context, limit int64) ([]entity.Review, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Review), args.Error(1)
}

func (m *mockReviewRepository) FindRecentByEmail(ctx context.Context, email string, since time.Time) (*entity.Review, error) {
	args := m.Called(ctx, email, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *mockReviewRepository) Stats(ctx context.Context) (*entity.ReviewStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ReviewStats), args.Error(1)
}

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestSubmitReview(t *testing.T) {
	repo := new(mockReviewRepository)
	svc := NewReviewService(repo, newTestLogger())

	repo.On("FindRecentByEmail", mock.Anything, "jane@example.com", mock.Anything).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
		return r.Email == "jane@example.com" &&
			r.Name == "Jane" &&
			r.Rating == 5 &&
			r.Status == entity.ReviewStatusApproved
	})).Return(nil)
	repo.On("Stats", mock.Anything).Return(&entity.ReviewStats{AverageRating: 5, TotalReviews: 1}, nil)

	review, stats, err := svc.Submit(context.Background(), SubmitReviewInput{
		Name:    "  Jane  ",
		Email:   "  JANE@Example.COM ",
		Rating:  5,
		Comment: "great work",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", review.Email)
	assert.Equal(t, "Jane", review.Name)
	assert.Equal(t, entity.ReviewStatusApproved, review.Status)
	assert.Equal(t, int64(1), stats.TotalReviews)
	repo.AssertExpectations(t)
}

func TestSubmitReviewThrottled(t *testing.T) {
	repo := new(mockReviewRepository)
	svc := NewReviewService(repo, newTestLogger())

	existing := &entity.Review{Email: "jane@example.com", CreatedAt: time.Now().UTC()}
	repo.On("FindRecentByEmail", mock.Anything, "jane@example.com", mock.Anything).Return(existing, nil)

	_, _, err := svc.Submit(context.Background(), SubmitReviewInput{
		Name:    "Jane",
		Email:   "Jane@Example.com",
		Rating:  4,
		Comment: "again",
	})
	require.ErrorIs(t, err, ErrRateLimited)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitReviewThrottleWindow(t *testing.T) {
	repo := new(mockReviewRepository)
	svc := NewReviewService(repo, newTestLogger())

	var gotSince time.Time
	repo.On("FindRecentByEmail", mock.Anything, "a@b.com", mock.MatchedBy(func(since time.Time) bool {
		gotSince = since
		return true
	})).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("Stats", mock.Anything).Return(&entity.ReviewStats{}, nil)

	before := time.Now().UTC().Add(-entity.SpamWindow)
	_, _, err := svc.Submit(context.Background(), SubmitReviewInput{
		Name: "A", Email: "a@b.com", Rating: 3, Comment: "ok",
	})
	after := time.Now().UTC().Add(-entity.SpamWindow)

	require.NoError(t, err)
	assert.False(t, gotSince.Before(before))
	assert.False(t, gotSince.After(after))
}

func TestSubmitReviewRepoError(t *testing.T) {
	repo := new(mockReviewRepository)
	svc := NewReviewService(repo, newTestLogger())

	dbErr := errors.New("connection reset")
	repo.On("FindRecentByEmail", mock.Anything, mock.Anything, mock.Anything).Return(nil, dbErr)

	_, _, err := svc.Submit(context.Background(), SubmitReviewInput{
		Name: "A", Email: "a@b.com", Rating: 3, Comment: "ok",
	})
	require.ErrorIs(t, err, dbErr)
}

func TestListReviews(t *testing.T) {
	repo := new(mockReviewRepository)
	svc := NewReviewService(repo, newTestLogger())

	reviews := []entity.Review{
		{Name: "Newest", Rating: 5, Status: entity.ReviewStatusApproved},
		{Name: "Older", Rating: 4, Status: entity.ReviewStatusApproved},
	}
	repo.On("ListApproved", mock.Anything, int64(entity.ListLimit)).Return(reviews, nil)
	repo.On("Stats", mock.Anything).Return(&entity.ReviewStats{AverageRating: 4.5, TotalReviews: 2}, nil)

	got, stats, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 4.5, stats.AverageRating)
	repo.AssertExpectations(t)
}

func TestStatsEmpty(t *testing.T) {
	repo := new(mockReviewRepository)
	svc := NewReviewService(repo, newTestLogger())

	repo.On("Stats", mock.Anything).Return(&entity.ReviewStats{}, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.AverageRating)
	assert.Zero(t, stats.TotalReviews)
}
