package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ilkhanul13/portfolio101/internal/domain"
	"github.com/ilkhanul13/portfolio101/internal/repository"
	apperrors "github.com/ilkhanul13/portfolio101/pkg/errors"
)

// StatsService aggregates approved testimonial ratings per project.
type StatsService struct {
	repo   repository.TestimonialRepository
	cache  StatsCache
	logger *slog.Logger

	// sampleLimit restricts the aggregate to the newest N approved rows.
	// Zero means aggregate over all of them.
	sampleLimit int
}

// NewStatsService creates a new stats service. Pass a zero sampleLimit for
// exact aggregates, or a positive one to bound the scan.
func NewStatsService(repo repository.TestimonialRepository, cache StatsCache, sampleLimit int, logger *slog.Logger) *StatsService {
	return &StatsService{
		repo:        repo,
		cache:       cache,
		logger:      logger,
		sampleLimit: sampleLimit,
	}
}

// GetStats returns the count and average rating over a project's approved
// testimonials. A project with no approved testimonials yields zero stats,
// not an error. The cache is consulted first; cache failures fall through to
// the store.
func (s *StatsService) GetStats(ctx context.Context, projectID string) (domain.Stats, error) {
	if _, ok := domain.ProjectByID(projectID); !ok {
		return domain.Stats{}, apperrors.NotFound("project", projectID)
	}

	if s.cache != nil {
		stats, err := s.cache.Get(ctx, projectID)
		if err == nil {
			return stats, nil
		}
		// A miss is expected; anything else means the cache is unhealthy.
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "failed to read cached stats",
				slog.String("project_id", projectID),
				slog.String("error", err.Error()),
			)
		}
	}

	stats, err := s.repo.ApprovedStats(ctx, projectID, s.sampleLimit)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("get testimonial stats: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, projectID, stats); err != nil {
			s.logger.WarnContext(ctx, "failed to cache stats",
				slog.String("project_id", projectID),
				slog.String("error", err.Error()),
			)
		}
	}

	return stats, nil
}
