package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilkhanul13/portfolio101/internal/domain"
	apperrors "github.com/ilkhanul13/portfolio101/pkg/errors"
)

func TestGetStats_CacheHit(t *testing.T) {
	repo := new(mockTestimonialRepository)
	cache := new(mockStatsCache)
	svc := NewStatsService(repo, cache, 0, newTestLogger())
	ctx := context.Background()

	cached := domain.Stats{Total: 5, AverageRating: 4.2}
	cache.On("Get", ctx, "1").Return(cached, nil)

	got, err := svc.GetStats(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, cached, got)

	repo.AssertNotCalled(t, "ApprovedStats")
}

func TestGetStats_CacheMissComputesAndStores(t *testing.T) {
	repo := new(mockTestimonialRepository)
	cache := new(mockStatsCache)
	svc := NewStatsService(repo, cache, 0, newTestLogger())
	ctx := context.Background()

	computed := domain.Stats{Total: 3, AverageRating: 4.3}

	cache.On("Get", ctx, "1").Return(domain.Stats{}, apperrors.NotFound("stats", "1"))
	repo.On("ApprovedStats", ctx, "1", 0).Return(computed, nil)
	cache.On("Set", ctx, "1", computed).Return(nil)

	got, err := svc.GetStats(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, computed, got)

	cache.AssertExpectations(t)
}

func TestGetStats_SampleLimitPassedThrough(t *testing.T) {
	repo := new(mockTestimonialRepository)
	svc := NewStatsService(repo, nil, 20, newTestLogger())
	ctx := context.Background()

	repo.On("ApprovedStats", ctx, "1", 20).Return(domain.Stats{Total: 20, AverageRating: 4.7}, nil)

	got, err := svc.GetStats(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 20, got.Total)

	repo.AssertExpectations(t)
}

func TestGetStats_NoApprovedYieldsZero(t *testing.T) {
	repo := new(mockTestimonialRepository)
	svc := NewStatsService(repo, nil, 0, newTestLogger())
	ctx := context.Background()

	repo.On("ApprovedStats", ctx, "1", 0).Return(domain.Stats{}, nil)

	got, err := svc.GetStats(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{Total: 0, AverageRating: 0}, got)
}

func TestGetStats_UnknownProject(t *testing.T) {
	repo := new(mockTestimonialRepository)
	svc := NewStatsService(repo, nil, 0, newTestLogger())

	_, err := svc.GetStats(context.Background(), "999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	repo.AssertNotCalled(t, "ApprovedStats")
}

func TestGetStats_CacheGetFailureIsLogged(t *testing.T) {
	repo := new(mockTestimonialRepository)
	cache := new(mockStatsCache)

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	svc := NewStatsService(repo, cache, 0, logger)
	ctx := context.Background()

	computed := domain.Stats{Total: 2, AverageRating: 4.5}

	cache.On("Get", ctx, "1").Return(domain.Stats{}, errors.New("connection refused"))
	repo.On("ApprovedStats", ctx, "1", 0).Return(computed, nil)
	cache.On("Set", ctx, "1", computed).Return(nil)

	got, err := svc.GetStats(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, computed, got)

	assert.Contains(t, logBuf.String(), "failed to read cached stats")
}

func TestGetStats_CacheMissIsNotLogged(t *testing.T) {
	repo := new(mockTestimonialRepository)
	cache := new(mockStatsCache)

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	svc := NewStatsService(repo, cache, 0, logger)
	ctx := context.Background()

	computed := domain.Stats{Total: 2, AverageRating: 4.5}

	cache.On("Get", ctx, "1").Return(domain.Stats{}, apperrors.NotFound("stats", "1"))
	repo.On("ApprovedStats", ctx, "1", 0).Return(computed, nil)
	cache.On("Set", ctx, "1", computed).Return(nil)

	_, err := svc.GetStats(ctx, "1")
	require.NoError(t, err)

	assert.NotContains(t, logBuf.String(), "failed to read cached stats")
}

func TestGetStats_CacheSetFailureIsNonFatal(t *testing.T) {
	repo := new(mockTestimonialRepository)
	cache := new(mockStatsCache)
	svc := NewStatsService(repo, cache, 0, newTestLogger())
	ctx := context.Background()

	computed := domain.Stats{Total: 1, AverageRating: 5}

	cache.On("Get", ctx, "1").Return(domain.Stats{}, assert.AnError)
	repo.On("ApprovedStats", ctx, "1", 0).Return(computed, nil)
	cache.On("Set", ctx, "1", computed).Return(assert.AnError)

	got, err := svc.GetStats(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, computed, got)
}
