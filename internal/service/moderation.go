package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ilkhanul13/portfolio101/internal/domain"
	"github.com/ilkhanul13/portfolio101/internal/event"
	"github.com/ilkhanul13/portfolio101/internal/repository"
	apperrors "github.com/ilkhanul13/portfolio101/pkg/errors"
)

// StatsCache is the subset of the stats cache the services need. A nil cache
// disables caching entirely.
type StatsCache interface {
	Get(ctx context.Context, projectID string) (domain.Stats, error)
	Set(ctx context.Context, projectID string, stats domain.Stats) error
	Invalidate(ctx context.Context, projectID string) error
}

// ModerationService implements the review workflow for pending testimonials.
type ModerationService struct {
	repo     repository.TestimonialRepository
	cache    StatsCache
	producer *event.Producer
	logger   *slog.Logger
}

// NewModerationService creates a new moderation service.
func NewModerationService(repo repository.TestimonialRepository, cache StatsCache, producer *event.Producer, logger *slog.Logger) *ModerationService {
	return &ModerationService{
		repo:     repo,
		cache:    cache,
		producer: producer,
		logger:   logger,
	}
}

// ListPending returns the moderation queue, newest first. A perPage of zero
// or less returns the full queue; pagination is opt-in.
func (s *ModerationService) ListPending(ctx context.Context, page, perPage int) ([]domain.Testimonial, int, error) {
	testimonials, total, err := s.repo.ListByStatus(ctx, domain.StatusPending, page, perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("list pending testimonials: %w", err)
	}

	return testimonials, total, nil
}

// Moderate sets a testimonial to approved or rejected. Re-moderating an
// already decided testimonial is allowed and idempotent for the same status.
func (s *ModerationService) Moderate(ctx context.Context, id, status string) (*domain.Testimonial, error) {
	if !domain.IsModeratedStatus(status) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("status must be %q or %q", domain.StatusApproved, domain.StatusRejected))
	}

	testimonial, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("moderate testimonial: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, testimonial.ProjectID); err != nil {
			s.logger.WarnContext(ctx, "failed to invalidate stats cache",
				slog.String("project_id", testimonial.ProjectID),
				slog.String("error", err.Error()),
			)
		}
	}

	if err := s.producer.PublishTestimonialModerated(ctx, testimonial); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish testimonial.moderated event",
			slog.String("testimonial_id", testimonial.ID),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}

	s.logger.InfoContext(ctx, "testimonial moderated",
		slog.String("testimonial_id", testimonial.ID),
		slog.String("status", testimonial.Status),
	)

	return testimonial, nil
}
