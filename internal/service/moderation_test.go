package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilkhanul13/portfolio101/internal/domain"
	apperrors "github.com/ilkhanul13/portfolio101/pkg/errors"
)

func newTestModerationService(repo *mockTestimonialRepository, cache StatsCache) *ModerationService {
	return NewModerationService(repo, cache, newTestProducer(), newTestLogger())
}

func TestModerate_Approve(t *testing.T) {
	repo := new(mockTestimonialRepository)
	cache := new(mockStatsCache)
	svc := newTestModerationService(repo, cache)
	ctx := context.Background()

	updated := &domain.Testimonial{ID: "t1", ProjectID: "1", Status: domain.StatusApproved}

	repo.On("UpdateStatus", ctx, "t1", domain.StatusApproved).Return(updated, nil)
	cache.On("Invalidate", ctx, "1").Return(nil)

	got, err := svc.Moderate(ctx, "t1", domain.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestModerate_Reject(t *testing.T) {
	repo := new(mockTestimonialRepository)
	cache := new(mockStatsCache)
	svc := newTestModerationService(repo, cache)
	ctx := context.Background()

	updated := &domain.Testimonial{ID: "t1", ProjectID: "1", Status: domain.StatusRejected}

	repo.On("UpdateStatus", ctx, "t1", domain.StatusRejected).Return(updated, nil)
	cache.On("Invalidate", ctx, "1").Return(nil)

	got, err := svc.Moderate(ctx, "t1", domain.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, got.Status)
}

func TestModerate_InvalidStatus(t *testing.T) {
	repo := new(mockTestimonialRepository)
	svc := newTestModerationService(repo, nil)

	for _, status := range []string{domain.StatusPending, "published", ""} {
		_, err := svc.Moderate(context.Background(), "t1", status)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput, "status %q must be rejected", status)
	}

	repo.AssertNotCalled(t, "UpdateStatus")
}

func TestModerate_NotFound(t *testing.T) {
	repo := new(mockTestimonialRepository)
	svc := newTestModerationService(repo, nil)
	ctx := context.Background()

	repo.On("UpdateStatus", ctx, "missing", domain.StatusApproved).
		Return(nil, apperrors.NotFound("testimonial", "missing"))

	_, err := svc.Moderate(ctx, "missing", domain.StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestModerate_RepeatDecisionIsIdempotent(t *testing.T) {
	repo := new(mockTestimonialRepository)
	cache := new(mockStatsCache)
	svc := newTestModerationService(repo, cache)
	ctx := context.Background()

	updated := &domain.Testimonial{ID: "t1", ProjectID: "1", Status: domain.StatusApproved}

	repo.On("UpdateStatus", ctx, "t1", domain.StatusApproved).Return(updated, nil).Twice()
	cache.On("Invalidate", ctx, "1").Return(nil).Twice()

	first, err := svc.Moderate(ctx, "t1", domain.StatusApproved)
	require.NoError(t, err)
	second, err := svc.Moderate(ctx, "t1", domain.StatusApproved)
	require.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	repo.AssertExpectations(t)
}

func TestModerate_CacheFailureIsNonFatal(t *testing.T) {
	repo := new(mockTestimonialRepository)
	cache := new(mockStatsCache)
	svc := newTestModerationService(repo, cache)
	ctx := context.Background()

	updated := &domain.Testimonial{ID: "t1", ProjectID: "1", Status: domain.StatusApproved}

	repo.On("UpdateStatus", ctx, "t1", domain.StatusApproved).Return(updated, nil)
	cache.On("Invalidate", ctx, "1").Return(assert.AnError)

	_, err := svc.Moderate(ctx, "t1", domain.StatusApproved)
	assert.NoError(t, err)
}

func TestModerate_NilCache(t *testing.T) {
	repo := new(mockTestimonialRepository)
	svc := newTestModerationService(repo, nil)
	ctx := context.Background()

	updated := &domain.Testimonial{ID: "t1", ProjectID: "1", Status: domain.StatusApproved}
	repo.On("UpdateStatus", ctx, "t1", domain.StatusApproved).Return(updated, nil)

	_, err := svc.Moderate(ctx, "t1", domain.StatusApproved)
	assert.NoError(t, err)
}

func TestListPending(t *testing.T) {
	repo := new(mockTestimonialRepository)
	svc := newTestModerationService(repo, nil)
	ctx := context.Background()

	pending := []domain.Testimonial{
		{ID: "t2", Status: domain.StatusPending},
		{ID: "t1", Status: domain.StatusPending},
	}

	repo.On("ListByStatus", ctx, domain.StatusPending, 1, 20).Return(pending, 2, nil)

	got, total, err := svc.ListPending(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, pending, got)
}

func TestListPending_FullQueueWithoutPaging(t *testing.T) {
	repo := new(mockTestimonialRepository)
	svc := newTestModerationService(repo, nil)
	ctx := context.Background()

	pending := make([]domain.Testimonial, 45)
	for i := range pending {
		pending[i] = domain.Testimonial{ID: "t" + string(rune('a'+i%26)), Status: domain.StatusPending}
	}

	repo.On("ListByStatus", ctx, domain.StatusPending, 1, 0).Return(pending, 45, nil)

	got, total, err := svc.ListPending(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 45, total)
	assert.Len(t, got, 45)
}
