package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ilkhanul13/portfolio101/internal/domain"
	pkgkafka "github.com/ilkhanul13/portfolio101/pkg/kafka"
)

// Kafka topic constants for portfolio domain events.
const (
	TopicTestimonialSubmitted = "portfolio.testimonial.submitted"
	TopicTestimonialModerated = "portfolio.testimonial.moderated"
	TopicContactReceived      = "portfolio.contact.received"
)

// Aggregate type constants.
const (
	AggregateTypeTestimonial = "testimonial"
	AggregateTypeContact     = "contact"
)

// Source identifier for events originating from this service.
const SourcePortfolioAPI = "portfolio-api"

// TestimonialSubmittedData is the payload for a testimonial.submitted event.
type TestimonialSubmittedData struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Rating       int    `json:"rating"`
	ProjectID    string `json:"project_id"`
	ProjectTitle string `json:"project_title"`
	Status       string `json:"status"`
}

// TestimonialModeratedData is the payload for a testimonial.moderated event.
// Consumers use it as the signal to refresh anything derived from the
// approved set, such as cached stats or rendered pages.
type TestimonialModeratedData struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Status    string `json:"status"`
}

// ContactReceivedData is the payload for a contact.received event.
type ContactReceivedData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
}

// Producer publishes portfolio domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishTestimonialSubmitted publishes a testimonial.submitted event.
func (p *Producer) PublishTestimonialSubmitted(ctx context.Context, t *domain.Testimonial) error {
	data := TestimonialSubmittedData{
		ID:           t.ID,
		Name:         t.Name,
		Rating:       t.Rating,
		ProjectID:    t.ProjectID,
		ProjectTitle: t.ProjectTitle,
		Status:       t.Status,
	}

	event, err := pkgkafka.NewEvent(TopicTestimonialSubmitted, t.ID, AggregateTypeTestimonial, SourcePortfolioAPI, data)
	if err != nil {
		return fmt.Errorf("create testimonial.submitted event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicTestimonialSubmitted, event); err != nil {
		return fmt.Errorf("publish testimonial.submitted event: %w", err)
	}

	p.logger.DebugContext(ctx, "published testimonial.submitted event",
		slog.String("testimonial_id", t.ID),
		slog.String("project_id", t.ProjectID),
	)

	return nil
}

// PublishTestimonialModerated publishes a testimonial.moderated event.
func (p *Producer) PublishTestimonialModerated(ctx context.Context, t *domain.Testimonial) error {
	data := TestimonialModeratedData{
		ID:        t.ID,
		ProjectID: t.ProjectID,
		Status:    t.Status,
	}

	event, err := pkgkafka.NewEvent(TopicTestimonialModerated, t.ID, AggregateTypeTestimonial, SourcePortfolioAPI, data)
	if err != nil {
		return fmt.Errorf("create testimonial.moderated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicTestimonialModerated, event); err != nil {
		return fmt.Errorf("publish testimonial.moderated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published testimonial.moderated event",
		slog.String("testimonial_id", t.ID),
		slog.String("status", t.Status),
	)

	return nil
}

// PublishContactReceived publishes a contact.received event.
func (p *Producer) PublishContactReceived(ctx context.Context, m *domain.ContactMessage) error {
	data := ContactReceivedData{
		Name:    m.Name,
		Email:   m.Email,
		Subject: m.Subject,
	}

	event, err := pkgkafka.NewEvent(TopicContactReceived, m.Email, AggregateTypeContact, SourcePortfolioAPI, data)
	if err != nil {
		return fmt.Errorf("create contact.received event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicContactReceived, event); err != nil {
		return fmt.Errorf("publish contact.received event: %w", err)
	}

	p.logger.DebugContext(ctx, "published contact.received event",
		slog.String("email", m.Email),
	)

	return nil
}
