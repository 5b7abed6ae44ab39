package service

import (
	"context"
	"log/slog"
	"os"

	"github.com/stretchr/testify/mock"

	"github.com/ilkhanul13/portfolio101/internal/domain"
	"github.com/ilkhanul13/portfolio101/internal/event"
	pkgkafka "github.com/ilkhanul13/portfolio101/pkg/kafka"
)

// --- Test Helpers ---

type mockTestimonialRepository struct {
	mock.Mock
}

func (m *mockTestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTestimonialRepository) GetByID(ctx context.Context, id string) (*domain.Testimonial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Testimonial), args.Error(1)
}

func (m *mockTestimonialRepository) ListApprovedByProject(ctx context.Context, projectID string, limit int) ([]domain.Testimonial, error) {
	args := m.Called(ctx, projectID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Testimonial), args.Error(1)
}

func (m *mockTestimonialRepository) ListByStatus(ctx context.Context, status string, page, perPage int) ([]domain.Testimonial, int, error) {
	args := m.Called(ctx, status, page, perPage)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Testimonial), args.Int(1), args.Error(2)
}

func (m *mockTestimonialRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Testimonial, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Testimonial), args.Error(1)
}

func (m *mockTestimonialRepository) ApprovedStats(ctx context.Context, projectID string, sampleLimit int) (domain.Stats, error) {
	args := m.Called(ctx, projectID, sampleLimit)
	return args.Get(0).(domain.Stats), args.Error(1)
}

func (m *mockTestimonialRepository) Probe(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type mockStatsCache struct {
	mock.Mock
}

func (m *mockStatsCache) Get(ctx context.Context, projectID string) (domain.Stats, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(domain.Stats), args.Error(1)
}

func (m *mockStatsCache) Set(ctx context.Context, projectID string, stats domain.Stats) error {
	args := m.Called(ctx, projectID, stats)
	return args.Error(0)
}

func (m *mockStatsCache) Invalidate(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Name() string {
	return "test"
}

func (m *mockSender) Send(ctx context.Context, msg *domain.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestProducer returns a producer wired to a broker that is not there;
// publish failures are non-fatal by design, so tests run without Kafka.
func newTestProducer() *event.Producer {
	logger := newTestLogger()
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig([]string{"localhost:9092"}), logger)
	return event.NewProducer(kafkaProducer, logger)
}

func validSubmission() domain.SubmissionInput {
	return domain.SubmissionInput{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Role:      "Product Manager",
		Company:   "Acme Corp",
		Rating:    4,
		Message:   "Delivered on time and communication was excellent.",
		ProjectID: "1",
	}
}
