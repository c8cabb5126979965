package worker

import (
	"arbeit/internal/notify"
	"arbeit/pkg/logger"
	"arbeit/pkg/mailer"
	"arbeit/pkg/metrics"
	"arbeit/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ThrottleBackoff is how long a job is snoozed when the mail provider reports
// that it is throttling us.
const ThrottleBackoff = time.Minute

// EmailWorker delivers queued e-mails through a mailer.Mailer.
//
// All jobs handled by one worker share a token bucket so the total send rate
// across concurrent River goroutines stays under SendsPerSecond. When the
// provider still throttles, the job is snoozed rather than counted as a
// failed attempt. Messages the provider rejects outright are cancelled.
type EmailWorker struct {
	river.WorkerDefaults[notify.EmailArgs]

	mailer  mailer.Mailer
	limiter *rate.Limiter
}

// NewEmailWorker constructs an EmailWorker. A non-positive sendsPerSecond
// disables pacing.
func NewEmailWorker(mailer mailer.Mailer, sendsPerSecond float64) *EmailWorker {
	limit := rate.Inf
	burst := 1
	if sendsPerSecond > 0 {
		limit = rate.Limit(sendsPerSecond)
		burst = max(1, int(sendsPerSecond))
	}

	return &EmailWorker{
		mailer:  mailer,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Work sends a single e-mail and maps mailer errors to River actions.
func (w *EmailWorker) Work(ctx context.Context, job *river.Job[notify.EmailArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("subject", job.Args.Subject))

	if err := w.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("could not wait for send budget: %w", err)
	}

	err := w.mailer.Send(ctx, job.Args.Email)
	metrics.EmailsSent.WithLabelValues(metrics.Result(err)).Inc()
	if err == nil {
		logger.Info(ctx, "email sent")

		return nil
	}

	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		logger.Error(ctx, "email rejected, giving up", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	case errors.Is(err, serrors.ErrRateLimited):
		logger.Warn(ctx, "email provider throttled, snoozing", zap.Duration("for", ThrottleBackoff))

		return river.JobSnooze(ThrottleBackoff) //nolint: wrapcheck
	}

	logger.Error(ctx, "error sending email", zap.Error(err))

	return fmt.Errorf("could not send email: %w", err)
}
