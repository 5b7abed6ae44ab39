package repository

import (
	"context"

	"github.com/ilkhanul13/portfolio101/internal/domain"
)

// TestimonialRepository defines persistence operations for testimonials.
type TestimonialRepository interface {
	// Create inserts a testimonial and fills in the store-assigned ID and
	// timestamps on the passed entity.
	Create(ctx context.Context, t *domain.Testimonial) error

	// GetByID retrieves a single testimonial regardless of status.
	GetByID(ctx context.Context, id string) (*domain.Testimonial, error)

	// ListApprovedByProject returns the newest approved testimonials for a
	// project, newest first, capped at limit.
	ListApprovedByProject(ctx context.Context, projectID string, limit int) ([]domain.Testimonial, error)

	// ListByStatus returns paginated testimonials in the given status across
	// all projects, newest first, along with the total count.
	ListByStatus(ctx context.Context, status string, page, perPage int) ([]domain.Testimonial, int, error)

	// UpdateStatus sets a testimonial's status and returns the updated row.
	UpdateStatus(ctx context.Context, id, status string) (*domain.Testimonial, error)

	// ApprovedStats aggregates count and average rating over a project's
	// approved testimonials. A positive sampleLimit restricts the aggregate
	// to the newest sampleLimit rows; zero aggregates over all of them.
	ApprovedStats(ctx context.Context, projectID string, sampleLimit int) (domain.Stats, error)

	// Probe runs a minimal read against the testimonials table and returns
	// the raw driver error, letting callers classify reachability.
	Probe(ctx context.Context) error
}
