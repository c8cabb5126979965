package application

import (
	"arbeit/pkg/domain"
	"context"
)

// Submission is the form a candidate fills in to apply.
type Submission struct {
	JobID           string
	FullName        string
	Email           string
	Phone           string
	CoverLetter     string
	Experience      string
	CurrentCompany  string
	CurrentJobTitle string
	Education       string
	LinkedinURL     string
	PortfolioURL    string
}

// ResumeUpload is a résumé attached to a submission.
type ResumeUpload struct {
	FileName string
	Data     []byte
}

//go:generate mockgen -package mockapplication -source=interface.go -destination=mock/mockapplication.go *
type Applications interface {
	Submit(ctx context.Context,
		principal domain.Principal,
		submission Submission,
		resume *ResumeUpload) (*domain.Application, error)
	UpdateStatus(ctx context.Context,
		principal domain.Principal,
		ID string,
		status domain.ApplicationStatus) (*domain.Application, error)
	// List returns the own applications of a candidate, or the received ones
	// of a business.
	List(ctx context.Context, principal domain.Principal) ([]domain.Application, error)
	ListByJob(ctx context.Context, principal domain.Principal, jobID string) ([]domain.Application, error)
	ListByUser(ctx context.Context, userID domain.UserID) ([]domain.Application, error)
	Resume(ctx context.Context, principal domain.Principal, ID string) (*domain.Resume, error)
	HiringProgress(ctx context.Context, principal domain.Principal) (*domain.HiringProgress, error)
}
