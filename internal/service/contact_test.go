package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ilkhanul13/portfolio101/internal/domain"
	apperrors "github.com/ilkhanul13/portfolio101/pkg/errors"
)

func sampleContact() *domain.ContactMessage {
	return &domain.ContactMessage{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Project inquiry",
		Message: "I would like to discuss a new project with you.",
	}
}

func TestContactSend_Success(t *testing.T) {
	snd := new(mockSender)
	svc := NewContactService(snd, newTestProducer(), newTestLogger())
	ctx := context.Background()

	msg := sampleContact()
	snd.On("Send", ctx, msg).Return(nil)

	assert.NoError(t, svc.Send(ctx, msg))
	snd.AssertExpectations(t)
}

func TestContactSend_DeliveryFailureIsOpaque(t *testing.T) {
	snd := new(mockSender)
	svc := NewContactService(snd, newTestProducer(), newTestLogger())
	ctx := context.Background()

	msg := sampleContact()
	snd.On("Send", ctx, msg).Return(errors.New("dial tcp smtp.internal:587: auth failed for user mailer"))

	err := svc.Send(ctx, msg)
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	assert.NotContains(t, err.Error(), "smtp.internal")
	assert.NotContains(t, err.Error(), "mailer")
}
