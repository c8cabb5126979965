package posting

import (
	"arbeit/pkg/domain"
	"arbeit/pkg/storage"
	"context"
)

//go:generate mockgen -package mockposting -source=interface.go -destination=mock/mockposting.go *
type Jobs interface {
	// ListActive returns the public list of active jobs, newest first.
	ListActive(ctx context.Context) ([]domain.Job, error)
	Get(ctx context.Context, jobID string) (*domain.Job, error)
	Create(ctx context.Context, principal domain.Principal, job domain.Job) (*domain.Job, error)
	ListForBusiness(ctx context.Context, principal domain.Principal, status domain.JobStatus) ([]domain.Job, error)
	Update(ctx context.Context,
		principal domain.Principal,
		jobID string,
		updates storage.JobUpdates) (*domain.Job, error)
	Delete(ctx context.Context, principal domain.Principal, jobID string) error
	ToggleStatus(ctx context.Context, principal domain.Principal, jobID string) (*domain.Job, error)
	IncrementApplicants(ctx context.Context, jobID string) error
	// Invalidate drops the cached list of active jobs.
	Invalidate(ctx context.Context)
}
