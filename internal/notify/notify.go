package notify

import (
	"arbeit/pkg/domain"
	"arbeit/pkg/storage"
	"context"
	"fmt"
	"strings"
	"time"
)

// Options configure how e-mail tasks are queued.
type Options struct {
	// MaxAttempts is the maximum number of delivery attempts per message.
	MaxAttempts int
	// DedupPeriod is the window during which a keyed message is sent once.
	DedupPeriod time.Duration
	// AppName is used in subjects and signatures.
	AppName string
}

// Notifier queues e-mails through a storage.TaskStorage. Passing the
// transactional storage of the current operation makes the e-mail part of
// the same commit.
type Notifier struct {
	options Options
}

// New creates a Notifier.
func New(options Options) *Notifier {
	if options.AppName == "" {
		options.AppName = "Arbeit"
	}

	return &Notifier{options: options}
}

func (n *Notifier) enqueue(ctx context.Context, tasks storage.TaskStorage, email domain.Email, dedupKey string) error {
	_, err := tasks.AddTask(ctx, EmailArgs{
		Email:       email,
		DedupKey:    dedupKey,
		maxAttempts: n.options.MaxAttempts,
		dedupPeriod: n.options.DedupPeriod,
	}, nil)
	if err != nil {
		return fmt.Errorf("could not queue email: %w", err)
	}

	return nil
}

// VerificationCode queues the company e-mail verification code. Codes are
// never deduplicated since every resend carries a new one.
func (n *Notifier) VerificationCode(ctx context.Context,
	tasks storage.TaskStorage,
	email, code string,
	ttl time.Duration) error {
	return n.enqueue(ctx, tasks, domain.Email{
		To:      email,
		Subject: n.options.AppName + " verification code",
		Body: fmt.Sprintf("Your verification code is %s.\n\nIt expires in %d minutes. "+
			"If you did not request it you can ignore this message.\n\n%s",
			code, int(ttl.Minutes()), n.options.AppName),
	}, "")
}

// ApplicationReceived confirms a submitted application to the candidate.
func (n *Notifier) ApplicationReceived(ctx context.Context,
	tasks storage.TaskStorage,
	application domain.Application,
	job domain.Job) error {
	return n.enqueue(ctx, tasks, domain.Email{
		To:      application.Email,
		Subject: fmt.Sprintf("Application received: %s at %s", job.Title, job.CompanyName),
		Body: fmt.Sprintf("Hi %s,\n\nthank you for applying to %s at %s. "+
			"We will let you know when the status of your application changes.\n\n%s",
			firstName(application.FullName), job.Title, job.CompanyName, n.options.AppName),
	}, "received:"+application.ID.String())
}

// StatusChanged tells the candidate about a new application status.
func (n *Notifier) StatusChanged(ctx context.Context,
	tasks storage.TaskStorage,
	application domain.Application) error {
	return n.enqueue(ctx, tasks, domain.Email{
		To:      application.Email,
		Subject: fmt.Sprintf("Your application for job %s is now %s", application.JobID, application.Status),
		Body: fmt.Sprintf("Hi %s,\n\nthe status of your application for job %s changed to %q.\n\n%s",
			firstName(application.FullName), application.JobID, application.Status, n.options.AppName),
	}, "status:"+application.ID.String()+":"+string(application.Status))
}

func firstName(fullName string) string {
	if f := strings.Fields(fullName); len(f) > 0 {
		return f[0]
	}

	return "there"
}
