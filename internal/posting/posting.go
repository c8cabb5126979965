// Package posting manages the job postings of businesses and serves the
// public job board.
package posting

import (
	"arbeit/internal/config"
	"arbeit/pkg/cache"
	"arbeit/pkg/domain"
	"arbeit/pkg/logger"
	"arbeit/pkg/metrics"
	"arbeit/pkg/serrors"
	"arbeit/pkg/storage"
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	activeJobsKey = "jobs:active"

	minJobID = 100
	maxJobID = 999
	// jobIDAttempts bounds the retries on job ID collisions.
	jobIDAttempts = 10

	listQueryTimeout = 10 * time.Second
)

// Options configure the job board.
type Options struct {
	// ListCacheTTL is how long the list of active jobs is served from cache.
	ListCacheTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ListCacheTTL: cfg.Jobs.ListCacheTTL,
	}
}

type jobs struct {
	options Options
	storage storage.Storage
	cache   cache.Store
	group   singleflight.Group
	// newJobID draws a candidate public job ID.
	newJobID func() string
}

// Ensure jobs implements Jobs.
var _ Jobs = (*jobs)(nil)

// New creates a Jobs service.
func New(storage storage.Storage, cache cache.Store, options Options) Jobs {
	return &jobs{
		options: options,
		storage: storage,
		cache:   cache,
		newJobID: func() string {
			return strconv.Itoa(minJobID + rand.IntN(maxJobID-minJobID+1)) //nolint: gosec
		},
	}
}

func requireBusiness(principal domain.Principal) error {
	if !principal.IsBusiness() || principal.BID == "" {
		return serrors.With(serrors.ErrForbidden, "only business accounts can manage jobs")
	}

	return nil
}

// ListActive serves the list from cache and collapses concurrent misses into
// a single query. Cache failures fall back to the database.
func (j *jobs) ListActive(ctx context.Context) ([]domain.Job, error) {
	var cached []domain.Job
	found, err := j.cache.GetJSON(ctx, activeJobsKey, &cached)
	if err != nil {
		logger.Warn(ctx, "could not read cached jobs", zap.Error(err))
	}
	if found {
		return cached, nil
	}

	// The shared query is detached from the caller that started it. Each
	// caller waits on its own ctx.
	ch := j.group.DoChan(activeJobsKey, func() (any, error) {
		queryCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), listQueryTimeout)
		defer cancel()

		active, err := j.storage.JobsByStatus(queryCtx, domain.JobStatusActive)
		if err != nil {
			return nil, fmt.Errorf("could not get active jobs: %w", err)
		}
		if active == nil {
			active = []domain.Job{}
		}

		if err := j.cache.SetJSON(queryCtx, activeJobsKey, active, j.options.ListCacheTTL); err != nil {
			logger.Warn(ctx, "could not cache jobs", zap.Error(err))
		}

		return active, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("could not get active jobs: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}

		return res.Val.([]domain.Job), nil
	}
}

// Invalidate removes the cached list. Failures only delay freshness until
// the entry expires.
func (j *jobs) Invalidate(ctx context.Context) {
	if err := j.cache.Delete(ctx, activeJobsKey); err != nil {
		logger.Warn(ctx, "could not invalidate cached jobs", zap.Error(err))
	}
}

// Get returns an active job.
func (j *jobs) Get(ctx context.Context, jobID string) (*domain.Job, error) {
	job, err := j.storage.JobByJobID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("could not get job: %w", err)
	}
	if job == nil || job.Status != domain.JobStatusActive {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}

	return job, nil
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

func validateSalary(minimum, maximum int64) error {
	if minimum < 0 || maximum < 0 {
		return serrors.With(serrors.ErrBadRequest, "salary must not be negative")
	}
	if maximum > 0 && minimum > maximum {
		return serrors.With(serrors.ErrBadRequest, "minimum salary must not exceed maximum salary")
	}

	return nil
}

func validateJob(job *domain.Job) error {
	job.Title = strings.TrimSpace(job.Title)
	job.Description = strings.TrimSpace(job.Description)
	job.Location = strings.TrimSpace(job.Location)
	job.JobType = strings.TrimSpace(job.JobType)

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"title", job.Title},
		{"description", job.Description},
		{"location", job.Location},
		{"jobType", job.JobType},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return serrors.With(serrors.ErrBadRequest, "missing required fields: %s", strings.Join(missing, ", "))
	}

	return validateSalary(job.SalaryMin, job.SalaryMax)
}

// Create posts a job for the business of principal under a fresh public ID.
func (j *jobs) Create(ctx context.Context, principal domain.Principal, job domain.Job) (*domain.Job, error) {
	if err := requireBusiness(principal); err != nil {
		return nil, err
	}
	if err := validateJob(&job); err != nil {
		return nil, err
	}

	business, err := j.storage.BusinessByBID(ctx, principal.BID)
	if err != nil {
		return nil, fmt.Errorf("could not get business: %w", err)
	}
	if business == nil {
		return nil, serrors.With(serrors.ErrNotFound, "business not found")
	}

	job.BID = business.BID
	job.CompanyName = business.CompanyName
	job.CompanyEmail = business.CompanyEmail
	job.Status = domain.JobStatusActive
	job.Applicants = 0
	job.PostedDate = time.Now()
	job.HiringProcess = cleanList(job.HiringProcess)
	job.ScreeningQuestions = cleanList(job.ScreeningQuestions)

	for range jobIDAttempts {
		job.JobID = j.newJobID()

		created, err := j.storage.CreateJob(ctx, job)
		if err == nil {
			logger.Info(ctx, "job created", zap.String("jobID", created.JobID), zap.String("bid", created.BID))
			metrics.JobsPosted.Inc()
			j.Invalidate(ctx)

			return created, nil
		}
		if !storage.IsDuplicate(err, storage.FieldJobID) {
			return nil, fmt.Errorf("could not create job: %w", err)
		}
	}

	return nil, serrors.With(serrors.ErrConflict, "could not allocate a unique job id")
}

// ListForBusiness returns the jobs of the business of principal. An empty
// status returns every job.
func (j *jobs) ListForBusiness(ctx context.Context,
	principal domain.Principal,
	status domain.JobStatus) ([]domain.Job, error) {
	if err := requireBusiness(principal); err != nil {
		return nil, err
	}
	if status != "" && !status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid status")
	}

	list, err := j.storage.JobsByBID(ctx, principal.BID, status)
	if err != nil {
		return nil, fmt.Errorf("could not get business jobs: %w", err)
	}

	return list, nil
}

// owned loads a job and checks that principal owns it.
func (j *jobs) owned(ctx context.Context, principal domain.Principal, jobID string) (*domain.Job, error) {
	if err := requireBusiness(principal); err != nil {
		return nil, err
	}

	job, err := j.storage.JobByJobID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("could not get job: %w", err)
	}
	if job == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}
	if job.BID != principal.BID {
		return nil, serrors.With(serrors.ErrForbidden, "job belongs to another business")
	}

	return job, nil
}

func validateUpdates(current *domain.Job, updates *storage.JobUpdates) error {
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"title", updates.Title},
		{"description", updates.Description},
		{"location", updates.Location},
		{"jobType", updates.JobType},
	} {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			return serrors.With(serrors.ErrBadRequest, "%s must not be empty", f.name)
		}
	}

	if updates.Status != nil && !updates.Status.Valid() {
		return serrors.With(serrors.ErrBadRequest, "invalid status")
	}

	minimum, maximum := current.SalaryMin, current.SalaryMax
	if updates.SalaryMin != nil {
		minimum = *updates.SalaryMin
	}
	if updates.SalaryMax != nil {
		maximum = *updates.SalaryMax
	}

	if updates.HiringProcess != nil {
		updates.HiringProcess = cleanList(updates.HiringProcess)
	}
	if updates.ScreeningQuestions != nil {
		updates.ScreeningQuestions = cleanList(updates.ScreeningQuestions)
	}

	return validateSalary(minimum, maximum)
}

// Update edits a job owned by principal.
func (j *jobs) Update(ctx context.Context,
	principal domain.Principal,
	jobID string,
	updates storage.JobUpdates) (*domain.Job, error) {
	current, err := j.owned(ctx, principal, jobID)
	if err != nil {
		return nil, err
	}
	if err := validateUpdates(current, &updates); err != nil {
		return nil, err
	}

	updated, err := j.storage.UpdateJob(ctx, principal.BID, jobID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update job: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}

	j.Invalidate(ctx)

	return updated, nil
}

// Delete removes a job owned by principal together with its applications.
func (j *jobs) Delete(ctx context.Context, principal domain.Principal, jobID string) error {
	if _, err := j.owned(ctx, principal, jobID); err != nil {
		return err
	}

	deleted, err := j.storage.DeleteJob(ctx, principal.BID, jobID)
	if err != nil {
		return fmt.Errorf("could not delete job: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "job not found")
	}

	logger.Info(ctx, "job deleted", zap.String("jobID", jobID), zap.String("bid", principal.BID))
	j.Invalidate(ctx)

	return nil
}

// ToggleStatus flips a job owned by principal between Active and Closed.
func (j *jobs) ToggleStatus(ctx context.Context, principal domain.Principal, jobID string) (*domain.Job, error) {
	current, err := j.owned(ctx, principal, jobID)
	if err != nil {
		return nil, err
	}

	next := current.Status.Toggle()
	updated, err := j.storage.UpdateJob(ctx, principal.BID, jobID, storage.JobUpdates{Status: &next})
	if err != nil {
		return nil, fmt.Errorf("could not update job status: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}

	j.Invalidate(ctx)

	return updated, nil
}

// IncrementApplicants adds one applicant to a job.
func (j *jobs) IncrementApplicants(ctx context.Context, jobID string) error {
	found, err := j.storage.IncrementApplicants(ctx, jobID)
	if err != nil {
		return fmt.Errorf("could not increment applicants: %w", err)
	}
	if !found {
		return serrors.With(serrors.ErrNotFound, "job not found")
	}

	j.Invalidate(ctx)

	return nil
}
