// Package notify dispatches templated candidate emails for a processed batch.
package notify

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when SMTP credentials are absent. Dispatch is a
// hard precondition failure in that case; no sends are attempted.
var ErrNotConfigured = errors.New("email credentials not configured")

// Mailer sends one plain-text message.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
