// Package storage defines the core storage interfaces that the application relies on.
// It abstracts persistence operations and transaction management so that different
// backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"arbeit/pkg/domain"
	"context"

	"github.com/riverqueue/river"
)

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	UserStorage
	BusinessStorage
	JobStorage
	ApplicationStorage
	ResumeStorage
	TaskStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same domain-specific capabilities as AllStorage,
// and additionally allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions. It exposes domain-specific capabilities and lifecycle
// management such as Close.
type Storage interface {
	AllStorage

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx is a helper that begins a transaction, invokes the provided callback
	// with a TxStorage, and then commits on success or rolls back if the callback
	// returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}

// ProfileUpdate reports the outcome of UpdateProfile.
type ProfileUpdate struct {
	// Matched is false when no user exists with the given ID.
	Matched bool
	// Modified is false when the stored profile already equals the new one.
	Modified bool
}

// UserStorage persists candidate accounts. Lookups return nil when the user
// does not exist.
type UserStorage interface {
	// CreateUser stores a new user. A taken username yields a DuplicateError
	// on FieldUsername.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// UserByUsername matches the username case-insensitively.
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
	// UpdatePassword replaces the password hash and reports whether the user exists.
	UpdatePassword(ctx context.Context, ID domain.UserID, passwordHash string) (bool, error)
	UpdateProfile(ctx context.Context, ID domain.UserID, profile domain.Profile) (ProfileUpdate, error)
}

// BusinessStorage persists business accounts. Lookups return nil when the
// business does not exist.
type BusinessStorage interface {
	// CreateBusiness stores a new business. A taken BID or company e-mail
	// yields a DuplicateError on FieldBID or FieldCompanyEmail.
	CreateBusiness(ctx context.Context, business domain.Business) (*domain.Business, error)
	BusinessByBID(ctx context.Context, BID string) (*domain.Business, error)
	// BusinessByCompanyEmail matches the e-mail case-insensitively.
	BusinessByCompanyEmail(ctx context.Context, email string) (*domain.Business, error)
}

// JobUpdates holds the editable fields of a posting. Only non-nil fields are
// written.
type JobUpdates struct {
	Title              *string
	Location           *string
	JobType            *string
	Department         *string
	Description        *string
	Requirements       *string
	Benefits           *string
	Qualification      *string
	SalaryMin          *int64
	SalaryMax          *int64
	HideSalary         *bool
	HiringProcess      []string
	ScreeningQuestions []string
	AdditionalInfo     *string
	Status             *domain.JobStatus
}

// JobStorage persists job postings. Lookups return nil when the job does not
// exist.
type JobStorage interface {
	// CreateJob stores a posting. A taken JobID yields a DuplicateError on FieldJobID.
	CreateJob(ctx context.Context, job domain.Job) (*domain.Job, error)
	JobByJobID(ctx context.Context, jobID string) (*domain.Job, error)
	// JobsByStatus returns the jobs with the given status, newest first.
	JobsByStatus(ctx context.Context, status domain.JobStatus) ([]domain.Job, error)
	// JobsByBID returns the jobs of a business, newest first. An empty status
	// disables the status filter.
	JobsByBID(ctx context.Context, BID string, status domain.JobStatus) ([]domain.Job, error)
	// UpdateJob applies updates to the job owned by BID and returns the updated
	// row, or nil when no such job exists.
	UpdateJob(ctx context.Context, BID, jobID string, updates JobUpdates) (*domain.Job, error)
	// DeleteJob removes the job owned by BID and returns it, or nil when no such
	// job exists.
	DeleteJob(ctx context.Context, BID, jobID string) (*domain.Job, error)
	// IncrementApplicants adds one to the applicant counter and reports whether
	// the job exists.
	IncrementApplicants(ctx context.Context, jobID string) (bool, error)
}

// ApplicationStatusUpdate describes a status change of an application.
type ApplicationStatusUpdate struct {
	Status domain.ApplicationStatus
	// MarkReviewed sets reviewed_date when it is still empty.
	MarkReviewed bool
}

// ApplicationStorage persists applications. Lookups return nil when the
// application does not exist. Lists are sorted by applied date, newest first.
type ApplicationStorage interface {
	// CreateApplication stores an application. A second application of the
	// same user for the same job yields a DuplicateError on FieldApplication.
	CreateApplication(ctx context.Context, application domain.Application) (*domain.Application, error)
	ApplicationByID(ctx context.Context, ID domain.ApplicationID) (*domain.Application, error)
	ApplicationsByUser(ctx context.Context, userID domain.UserID) ([]domain.Application, error)
	ApplicationsByJob(ctx context.Context, jobID string) ([]domain.Application, error)
	// ApplicationsByBID returns the applications received by all jobs of a business.
	ApplicationsByBID(ctx context.Context, BID string) ([]domain.Application, error)
	// UpdateApplicationStatus returns the updated row, or nil when no such
	// application exists.
	UpdateApplicationStatus(ctx context.Context,
		ID domain.ApplicationID,
		update ApplicationStatusUpdate) (*domain.Application, error)
	// ApplicationStatusCounts counts the applications of a business per status.
	ApplicationStatusCounts(ctx context.Context, BID string) (map[domain.ApplicationStatus]int, error)
}

// ResumeStorage persists résumé files.
type ResumeStorage interface {
	StoreResume(ctx context.Context, resume domain.Resume) (*domain.Resume, error)
	// ResumeByID returns nil when the résumé does not exist.
	ResumeByID(ctx context.Context, ID domain.ResumeID) (*domain.Resume, error)
}

// TaskStorage enqueues background tasks. Implementations are responsible for
// persisting the task into the underlying queue backend. The args parameter
// contains the task payload and opts can be used to customize insertion
// behavior (e.g., queue name, delay, priority).
type TaskStorage interface {
	// AddTask enqueues a new task with the given arguments. It is atomic with
	// respect to any surrounding transaction when supported by the backend. The
	// boolean is false when a unique task with the same arguments exists.
	AddTask(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
