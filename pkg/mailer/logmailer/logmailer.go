// Package logmailer provides a mailer.Mailer that writes messages to the log
// instead of delivering them. It is meant for local development.
package logmailer

import (
	"arbeit/pkg/domain"
	"arbeit/pkg/logger"
	"arbeit/pkg/mailer"
	"context"

	"go.uber.org/zap"
)

// Mailer logs every message at info level.
type Mailer struct{}

var _ mailer.Mailer = Mailer{}

func (Mailer) Send(ctx context.Context, email domain.Email) error {
	logger.Info(ctx, "email not delivered, log mailer in use",
		zap.String("to", email.To),
		zap.String("subject", email.Subject),
		zap.String("body", email.Body))

	return nil
}
