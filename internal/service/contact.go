package service

import (
	"context"
	"log/slog"

	"github.com/ilkhanul13/portfolio101/internal/domain"
	"github.com/ilkhanul13/portfolio101/internal/event"
	"github.com/ilkhanul13/portfolio101/internal/sender"
	apperrors "github.com/ilkhanul13/portfolio101/pkg/errors"
)

// ContactService relays contact form messages by mail.
type ContactService struct {
	sender   sender.Sender
	producer *event.Producer
	logger   *slog.Logger
}

// NewContactService creates a new contact service.
func NewContactService(snd sender.Sender, producer *event.Producer, logger *slog.Logger) *ContactService {
	return &ContactService{
		sender:   snd,
		producer: producer,
		logger:   logger,
	}
}

// Send relays the message to the site owner. Delivery failures surface as a
// generic unavailability error so transport details never reach the caller.
func (s *ContactService) Send(ctx context.Context, msg *domain.ContactMessage) error {
	if err := s.sender.Send(ctx, msg); err != nil {
		s.logger.ErrorContext(ctx, "contact delivery failed",
			slog.String("sender", s.sender.Name()),
			slog.String("error", err.Error()),
		)
		return apperrors.Unavailable("unable to send your message right now, please try again later")
	}

	if err := s.producer.PublishContactReceived(ctx, msg); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish contact.received event",
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}

	s.logger.InfoContext(ctx, "contact message relayed",
		slog.String("sender", s.sender.Name()),
	)

	return nil
}
