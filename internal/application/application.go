// Package application handles job applications from submission to hiring.
package application

import (
	"arbeit/internal/config"
	"arbeit/internal/notify"
	"arbeit/internal/posting"
	"arbeit/pkg/domain"
	"arbeit/pkg/logger"
	"arbeit/pkg/metrics"
	"arbeit/pkg/serrors"
	"arbeit/pkg/storage"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure application submission.
type Options struct {
	// MaxResumeBytes is the largest accepted résumé.
	MaxResumeBytes int64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxResumeBytes: cfg.Applications.MaxResumeBytes,
	}
}

type applications struct {
	options  Options
	storage  storage.Storage
	jobs     posting.Jobs
	notifier *notify.Notifier
	validate *validator.Validate
}

// Ensure applications implements Applications.
var _ Applications = (*applications)(nil)

// New creates an Applications service. jobs is used to refresh the public
// job list after applicant counters change.
func New(storage storage.Storage, jobs posting.Jobs, notifier *notify.Notifier, options Options) Applications {
	return &applications{
		options:  options,
		storage:  storage,
		jobs:     jobs,
		notifier: notifier,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func requireBusiness(principal domain.Principal) error {
	if !principal.IsBusiness() || principal.BID == "" {
		return serrors.With(serrors.ErrForbidden, "only business accounts can review applications")
	}

	return nil
}

func parseID(ID string) (domain.ApplicationID, error) {
	if ID == "" {
		return domain.ApplicationID{}, serrors.With(serrors.ErrBadRequest, "application id is required")
	}

	parsed, err := uuid.Parse(ID)
	if err != nil {
		return domain.ApplicationID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid application id")
	}

	return domain.ApplicationID(parsed), nil
}

func (a *applications) validateSubmission(s *Submission) error {
	s.JobID = strings.TrimSpace(s.JobID)
	s.FullName = strings.TrimSpace(s.FullName)
	s.Email = strings.TrimSpace(s.Email)

	if s.JobID == "" || s.FullName == "" || s.Email == "" {
		return serrors.With(serrors.ErrBadRequest, "jobId, fullName and email are required")
	}
	if err := a.validate.Var(s.Email, "email"); err != nil {
		return serrors.With(serrors.ErrBadRequest, "email must be a valid email address")
	}
	for _, u := range []struct{ name, value string }{
		{"linkedinUrl", s.LinkedinURL},
		{"portfolioUrl", s.PortfolioURL},
	} {
		if u.value != "" && a.validate.Var(u.value, "http_url") != nil {
			return serrors.With(serrors.ErrBadRequest, "%s must be a valid URL", u.name)
		}
	}

	return nil
}

// Submit stores an application for an active job. The résumé, the
// application, the applicant counter and the confirmation e-mail are
// committed together.
func (a *applications) Submit(ctx context.Context,
	principal domain.Principal,
	submission Submission,
	resume *ResumeUpload) (*domain.Application, error) {
	if principal.Role != domain.RoleUser {
		return nil, serrors.With(serrors.ErrForbidden, "only candidates can apply for jobs")
	}
	if err := a.validateSubmission(&submission); err != nil {
		return nil, err
	}

	var contentType, fileName string
	if resume != nil && len(resume.Data) > 0 {
		var err error
		if contentType, fileName, err = sniffResume(resume, a.options.MaxResumeBytes); err != nil {
			return nil, err
		}
	}

	var created *domain.Application
	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		job, err := tx.JobByJobID(ctx, submission.JobID)
		if err != nil {
			return fmt.Errorf("could not get job: %w", err)
		}
		if job == nil || job.Status != domain.JobStatusActive {
			return serrors.With(serrors.ErrNotFound, "job not found or not active")
		}

		app := domain.Application{
			UserID:          principal.UserID(),
			JobID:           job.JobID,
			FullName:        submission.FullName,
			Email:           submission.Email,
			Phone:           submission.Phone,
			CoverLetter:     submission.CoverLetter,
			Experience:      submission.Experience,
			CurrentCompany:  submission.CurrentCompany,
			CurrentJobTitle: submission.CurrentJobTitle,
			Education:       submission.Education,
			LinkedinURL:     submission.LinkedinURL,
			PortfolioURL:    submission.PortfolioURL,
			Status:          domain.ApplicationStatusPending,
		}

		if contentType != "" {
			stored, err := tx.StoreResume(ctx, domain.Resume{
				UserID:      principal.UserID(),
				FileName:    fileName,
				ContentType: contentType,
				Data:        resume.Data,
			})
			if err != nil {
				return fmt.Errorf("could not store resume: %w", err)
			}
			app.ResumeID = &stored.ID
			app.ResumeFileName = stored.FileName
		}

		created, err = tx.CreateApplication(ctx, app)
		if err != nil {
			if storage.IsDuplicate(err, storage.FieldApplication) {
				return serrors.Wrap(serrors.ErrConflict, err, "you have already applied for this job")
			}

			return fmt.Errorf("could not create application: %w", err)
		}

		found, err := tx.IncrementApplicants(ctx, job.JobID)
		if err != nil {
			return fmt.Errorf("could not increment applicants: %w", err)
		}
		if !found {
			return serrors.With(serrors.ErrNotFound, "job not found or not active")
		}

		return a.notifier.ApplicationReceived(ctx, tx, *created, *job)
	}); err != nil {
		return nil, fmt.Errorf("could not submit application: %w", err)
	}

	logger.Info(ctx, "application submitted",
		zap.Stringer("applicationID", created.ID),
		zap.String("jobID", created.JobID))
	metrics.ApplicationsSubmitted.WithLabelValues(strconv.FormatBool(created.ResumeID != nil)).Inc()
	a.jobs.Invalidate(ctx)

	return created, nil
}

// ownedJob loads a job and checks it belongs to the business of principal.
func ownedJob(ctx context.Context, st storage.JobStorage, principal domain.Principal, jobID string) (*domain.Job, error) {
	job, err := st.JobByJobID(ctx, jobID)
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

// UpdateStatus moves an application to a new status. The first move to
// Under Review records the review date.
func (a *applications) UpdateStatus(ctx context.Context,
	principal domain.Principal,
	ID string,
	status domain.ApplicationStatus) (*domain.Application, error) {
	if err := requireBusiness(principal); err != nil {
		return nil, err
	}
	if ID == "" || status == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "application id and status are required")
	}
	appID, err := parseID(ID)
	if err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid status %q", status)
	}

	var updated *domain.Application
	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.ApplicationByID(ctx, appID)
		if err != nil {
			return fmt.Errorf("could not get application: %w", err)
		}
		if current == nil {
			return serrors.With(serrors.ErrNotFound, "application not found")
		}

		if _, err := ownedJob(ctx, tx, principal, current.JobID); err != nil {
			return err
		}

		updated, err = tx.UpdateApplicationStatus(ctx, appID, storage.ApplicationStatusUpdate{
			Status:       status,
			MarkReviewed: status == domain.ApplicationStatusUnderReview,
		})
		if err != nil {
			return fmt.Errorf("could not update application: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "application not found")
		}

		if current.Status == status {
			return nil
		}

		return a.notifier.StatusChanged(ctx, tx, *updated)
	}); err != nil {
		return nil, fmt.Errorf("could not update application status: %w", err)
	}

	return updated, nil
}

func (a *applications) List(ctx context.Context, principal domain.Principal) ([]domain.Application, error) {
	if !principal.IsBusiness() {
		return a.ListByUser(ctx, principal.UserID())
	}
	if err := requireBusiness(principal); err != nil {
		return nil, err
	}

	list, err := a.storage.ApplicationsByBID(ctx, principal.BID)
	if err != nil {
		return nil, fmt.Errorf("could not get applications: %w", err)
	}

	return list, nil
}

func (a *applications) ListByJob(ctx context.Context,
	principal domain.Principal,
	jobID string) ([]domain.Application, error) {
	if err := requireBusiness(principal); err != nil {
		return nil, err
	}
	if _, err := ownedJob(ctx, a.storage, principal, jobID); err != nil {
		return nil, err
	}

	list, err := a.storage.ApplicationsByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("could not get applications: %w", err)
	}

	return list, nil
}

func (a *applications) ListByUser(ctx context.Context, userID domain.UserID) ([]domain.Application, error) {
	list, err := a.storage.ApplicationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get applications: %w", err)
	}

	return list, nil
}

// Resume returns the résumé attached to an application. Only the applicant
// and the business owning the job may read it.
func (a *applications) Resume(ctx context.Context, principal domain.Principal, ID string) (*domain.Resume, error) {
	appID, err := parseID(ID)
	if err != nil {
		return nil, err
	}

	app, err := a.storage.ApplicationByID(ctx, appID)
	if err != nil {
		return nil, fmt.Errorf("could not get application: %w", err)
	}
	if app == nil {
		return nil, serrors.With(serrors.ErrNotFound, "application not found")
	}

	if principal.IsBusiness() {
		if _, err := ownedJob(ctx, a.storage, principal, app.JobID); err != nil {
			return nil, err
		}
	} else if app.UserID != principal.UserID() {
		return nil, serrors.With(serrors.ErrForbidden, "application belongs to another user")
	}

	if app.ResumeID == nil {
		return nil, serrors.With(serrors.ErrNotFound, "resume not found")
	}

	resume, err := a.storage.ResumeByID(ctx, *app.ResumeID)
	if err != nil {
		return nil, fmt.Errorf("could not get resume: %w", err)
	}
	if resume == nil {
		return nil, serrors.With(serrors.ErrNotFound, "resume not found")
	}

	return resume, nil
}

// HiringProgress counts the applications of a business as a funnel: every
// stage includes the candidates that went further.
func (a *applications) HiringProgress(ctx context.Context, principal domain.Principal) (*domain.HiringProgress, error) {
	if err := requireBusiness(principal); err != nil {
		return nil, err
	}

	counts, err := a.storage.ApplicationStatusCounts(ctx, principal.BID)
	if err != nil {
		return nil, fmt.Errorf("could not count applications: %w", err)
	}

	var progress domain.HiringProgress
	for _, n := range counts {
		progress.Total += n
	}
	hired := counts[domain.ApplicationStatusHired]
	interviewed := counts[domain.ApplicationStatusInterviewed] + hired

	progress.Reviewed = progress.Total - counts[domain.ApplicationStatusPending]
	progress.Shortlisted = counts[domain.ApplicationStatusShortlisted] + interviewed
	progress.Interviewed = interviewed
	progress.Hired = hired

	return &progress, nil
}
