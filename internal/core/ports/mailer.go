package ports

import "context"

// Mailer dispatches templated outbound mail.
type Mailer interface {
	// SendCode delivers a verification code for a pending login challenge.
	SendCode(ctx context.Context, recipientEmail, code string, ttlMinutes int) error
	// SendAlert notifies the operations address about a stock alert.
	SendAlert(ctx context.Context, subject, message string) error
}
