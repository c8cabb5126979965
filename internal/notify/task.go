// Package notify builds the transactional e-mails of the job board and queues
// them as background tasks.
package notify

import (
	"arbeit/pkg/domain"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// EmailArgs is the payload of a queued e-mail.
type EmailArgs struct {
	domain.Email

	// DedupKey, when set, makes the task unique for DedupPeriod so retried
	// requests do not send the same message twice.
	DedupKey string `json:"dedupKey,omitempty" river:"unique"`

	maxAttempts int
	dedupPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the e-mail worker.
func (args EmailArgs) Kind() string { return "SendEmail" }

// InsertOpts limits retries and, for keyed messages, rejects duplicates that
// are still waiting or were sent recently.
func (args EmailArgs) InsertOpts() river.InsertOpts {
	opts := river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
	if args.DedupKey == "" {
		return opts
	}

	opts.UniqueOpts = river.UniqueOpts{
		ByArgs:   true,
		ByPeriod: args.dedupPeriod,
		ByState: []rivertype.JobState{
			rivertype.JobStateAvailable,
			rivertype.JobStateCompleted,
			rivertype.JobStatePending,
			rivertype.JobStateRunning,
			rivertype.JobStateRetryable,
			rivertype.JobStateScheduled,
		},
	}

	return opts
}
