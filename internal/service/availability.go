package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ilkhanul13/portfolio101/internal/repository"
)

// AvailabilityService reports whether the testimonial store can be used. The
// result gates which routes the server mounts, so a misconfigured deployment
// degrades to a read-only portfolio instead of serving errors.
type AvailabilityService struct {
	repo   repository.TestimonialRepository
	logger *slog.Logger
}

// NewAvailabilityService creates a new availability service. A nil repo marks
// the store as not configured at all.
func NewAvailabilityService(repo repository.TestimonialRepository, logger *slog.Logger) *AvailabilityService {
	return &AvailabilityService{
		repo:   repo,
		logger: logger,
	}
}

// Check probes the store. Without a configured store it reports false
// immediately, making no network call. A reachable store whose schema or
// grants are incomplete still counts as available: those are deployment
// problems to fix, not reasons to hide the feature.
func (s *AvailabilityService) Check(ctx context.Context) bool {
	if s.repo == nil {
		return false
	}

	err := s.repo.Probe(ctx)
	if err == nil {
		return true
	}

	if isUndefinedTable(err) || isInsufficientPrivilege(err) {
		s.logger.WarnContext(ctx, "testimonial store reachable but misconfigured",
			slog.String("error", err.Error()),
		)
		return true
	}

	s.logger.ErrorContext(ctx, "testimonial store unreachable",
		slog.String("error", err.Error()),
	)

	return false
}

// isUndefinedTable checks for SQLSTATE 42P01 (relation does not exist).
func isUndefinedTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "42P01")
}

// isInsufficientPrivilege checks for SQLSTATE 42501 (insufficient privilege).
func isInsufficientPrivilege(err error) bool {
	return err != nil && strings.Contains(err.Error(), "42501")
}
