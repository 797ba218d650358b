package service

import "context"

// Mailer delivers out-of-band messages to users. Only the password-reset flow
// needs it today.
type Mailer interface {
	// SendPasswordReset delivers a reset token to the given address.
	SendPasswordReset(ctx context.Context, email, resetToken string) error
}
