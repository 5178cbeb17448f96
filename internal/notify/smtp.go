package notify

import (
	"context"
	"fmt"
	"strings"

	mail "github.com/wneessen/go-mail"
)

// SMTPMailer sends messages through an SMTP relay using
// github.com/wneessen/go-mail with STARTTLS and plain auth.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer builds a mailer from transport configuration. Username and
// password are required; ErrNotConfigured is returned when either is missing.
func NewSMTPMailer(host string, port int, username, password, from string) (*SMTPMailer, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(host) == "" {
		host = "smtp.gmail.com"
	}
	if port <= 0 {
		port = 587
	}
	if strings.TrimSpace(from) == "" {
		from = username
	}

	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTPMailer{client: client, from: from}, nil
}

// Send delivers one plain-text message to a single recipient.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send to %s: %w", to, err)
	}
	return nil
}
