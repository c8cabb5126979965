// Package mailer sends transactional e-mails such as verification codes and
// application updates.
package mailer

import (
	"arbeit/pkg/domain"
	"context"
)

// Mailer delivers a single message. Implementations return a serrors
// ErrRateLimited error when the provider throttles and ErrBadRequest when the
// message can never be delivered.
//
//go:generate mockgen -package mockmailer -source=interface.go -destination=mock/mockmailer.go *
type Mailer interface {
	Send(ctx context.Context, email domain.Email) error
}
