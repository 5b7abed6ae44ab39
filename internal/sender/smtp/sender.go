package smtp

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/ilkhanul13/portfolio101/internal/domain"
)

// Config holds SMTP relay settings for the contact form.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Sender delivers contact messages over SMTP.
type Sender struct {
	cfg    Config
	dialer *gomail.Dialer
}

// NewSender creates an SMTP-backed contact sender.
func NewSender(cfg Config) *Sender {
	return &Sender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Name implements sender.Sender.
func (s *Sender) Name() string {
	return "smtp"
}

// Send relays the message to the configured inbox. The submitter's address
// goes in Reply-To so the owner can answer directly. Dial errors are reported
// without the transport detail that would expose host or credentials.
func (s *Sender) Send(ctx context.Context, msg *domain.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := msg.Subject
	if strings.TrimSpace(subject) == "" {
		subject = "New contact form message"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", s.cfg.To)
	m.SetHeader("Reply-To", m.FormatAddress(msg.Email, msg.Name))
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody(msg))
	m.AddAlternative("text/html", htmlBody(msg))

	if err := s.dialer.DialAndSend(m); err != nil {
		return errors.New("send contact mail: delivery failed")
	}

	return nil
}

func plainBody(msg *domain.ContactMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\n", msg.Name, msg.Email)
	if msg.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", msg.Subject)
	}
	b.WriteString("\n")
	b.WriteString(msg.Message)
	return b.String()
}

func htmlBody(msg *domain.ContactMessage) string {
	var b strings.Builder
	b.WriteString("<h2>New contact form message</h2>")
	fmt.Fprintf(&b, "<p><strong>From:</strong> %s &lt;%s&gt;</p>",
		html.EscapeString(msg.Name), html.EscapeString(msg.Email))
	if msg.Subject != "" {
		fmt.Fprintf(&b, "<p><strong>Subject:</strong> %s</p>", html.EscapeString(msg.Subject))
	}
	fmt.Fprintf(&b, "<blockquote>%s</blockquote>",
		strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>"))
	return b.String()
}
