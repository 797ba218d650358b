// Package mail delivers out-of-band messages to users.
package mail

import (
	"context"
	"log/slog"

	"fittrack/internal/domain/service"
)

// slogMailer writes outbound mail to the structured log instead of an SMTP
// relay. Deployments front this with a real provider behind the same interface;
// the log line carries everything a delivery worker needs.
type slogMailer struct {
	logger *slog.Logger
}

// NewSlogMailer is the constructor for slogMailer.
func NewSlogMailer(logger *slog.Logger) service.Mailer {
	return &slogMailer{logger: logger}
}

// SendPasswordReset records the reset token for out-of-band delivery.
func (m *slogMailer) SendPasswordReset(ctx context.Context, email, resetToken string) error {
	m.logger.InfoContext(ctx, "Password reset requested",
		slog.String("email", email),
		slog.String("resetToken", resetToken),
	)

	return nil
}
