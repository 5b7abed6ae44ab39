package sender

import (
	"context"

	"github.com/ilkhanul13/portfolio101/internal/domain"
)

// Sender relays a contact message to the site owner's inbox.
type Sender interface {
	// Name identifies the sender implementation in logs.
	Name() string

	// Send delivers the message. Implementations must not leak transport
	// credentials in returned errors.
	Send(ctx context.Context, msg *domain.ContactMessage) error
}
