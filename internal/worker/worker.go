package worker

import (
	"arbeit/pkg/logger"
	"arbeit/pkg/mailer"
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the background task runner.
type Options struct {
	// MaxWorkers bounds the number of jobs processed concurrently.
	MaxWorkers int
	// SendsPerSecond paces outgoing e-mails.
	SendsPerSecond float64
}

// NewWorkers registers every task handler the service knows how to run.
func NewWorkers(mailer mailer.Mailer, options Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewEmailWorker(mailer, options.SendsPerSecond))

	return workers
}

// Start creates a River client processing the default queue and starts it.
func Start(ctx context.Context, dbPool *pgxpool.Pool, mailer mailer.Mailer, options Options) (*river.Client[pgx.Tx], error) {
	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: NewWorkers(mailer, options),
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
