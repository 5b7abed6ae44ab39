package mock

import (
	"context"
	"log/slog"

	"github.com/ilkhanul13/portfolio101/internal/domain"
)

// Sender is a no-op contact sender used when SMTP is not configured. It logs
// the message and reports success so the contact form stays usable in
// development environments.
type Sender struct {
	logger *slog.Logger
}

// NewSender creates a logging mock sender.
func NewSender(logger *slog.Logger) *Sender {
	return &Sender{logger: logger}
}

// Name implements sender.Sender.
func (s *Sender) Name() string {
	return "mock"
}

// Send logs the message instead of delivering it.
func (s *Sender) Send(ctx context.Context, msg *domain.ContactMessage) error {
	s.logger.InfoContext(ctx, "mock contact delivery",
		slog.String("name", msg.Name),
		slog.String("email", msg.Email),
		slog.String("subject", msg.Subject),
	)
	return nil
}
