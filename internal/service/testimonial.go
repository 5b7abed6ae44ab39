package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/ilkhanul13/portfolio101/internal/domain"
	"github.com/ilkhanul13/portfolio101/internal/event"
	"github.com/ilkhanul13/portfolio101/internal/repository"
	apperrors "github.com/ilkhanul13/portfolio101/pkg/errors"
)

// publicListLimit caps how many approved testimonials the public endpoint
// returns per project.
const publicListLimit = 20

// TestimonialService implements submission and public listing of testimonials.
type TestimonialService struct {
	repo     repository.TestimonialRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewTestimonialService creates a new testimonial service.
func NewTestimonialService(repo repository.TestimonialRepository, producer *event.Producer, logger *slog.Logger) *TestimonialService {
	return &TestimonialService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// Submit validates a submission and stores it as pending. Every submission
// goes through moderation; nothing is published directly.
func (s *TestimonialService) Submit(ctx context.Context, input domain.SubmissionInput) (*domain.Testimonial, error) {
	if details := domain.ValidateSubmission(input); len(details) > 0 {
		return nil, apperrors.ValidationFailed(details)
	}

	rating := input.Rating
	if rating == 0 {
		rating = domain.DefaultRating
	}
	if rating < 1 || rating > 5 {
		return nil, apperrors.InvalidInput("rating must be between 1 and 5")
	}

	message := strings.TrimSpace(input.Message)
	if utf8.RuneCountInString(message) > domain.MaxMessageLength {
		return nil, apperrors.InvalidInput(fmt.Sprintf("message must be at most %d characters", domain.MaxMessageLength))
	}

	project, ok := domain.ProjectByID(input.ProjectID)
	if !ok {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown project %q", input.ProjectID))
	}

	testimonial := &domain.Testimonial{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(input.Email),
		Role:         strings.TrimSpace(input.Role),
		Company:      strings.TrimSpace(input.Company),
		Rating:       rating,
		Message:      message,
		ProjectID:    project.ID,
		ProjectTitle: project.Title,
		Status:       domain.StatusPending,
	}

	if err := s.repo.Create(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("submit testimonial: %w", err)
	}

	if err := s.producer.PublishTestimonialSubmitted(ctx, testimonial); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish testimonial.submitted event",
			slog.String("testimonial_id", testimonial.ID),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}

	s.logger.InfoContext(ctx, "testimonial submitted",
		slog.String("testimonial_id", testimonial.ID),
		slog.String("project_id", testimonial.ProjectID),
	)

	return testimonial, nil
}

// ListApproved returns the newest approved testimonials for a project.
func (s *TestimonialService) ListApproved(ctx context.Context, projectID string) ([]domain.Testimonial, error) {
	if _, ok := domain.ProjectByID(projectID); !ok {
		return nil, apperrors.NotFound("project", projectID)
	}

	testimonials, err := s.repo.ListApprovedByProject(ctx, projectID, publicListLimit)
	if err != nil {
		return nil, fmt.Errorf("list approved testimonials: %w", err)
	}

	return testimonials, nil
}
