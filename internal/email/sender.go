// internal/email/sender.go
package email

import "context"

// EmailSender abstracts the outbound mail transport. Callers treat
// sends as best-effort: a failed notification never rolls back the
// state change it announces.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, htmlBody, textBody string) error
}

// NoopSender discards mail. Used when email is disabled in config and
// as the default in tests.
type NoopSender struct{}

func (NoopSender) SendEmail(ctx context.Context, to, subject, htmlBody, textBody string) error {
	return nil
}
