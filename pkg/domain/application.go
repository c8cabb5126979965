package domain

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationID uniquely identifies an application.
type ApplicationID uuid.UUID

func (id ApplicationID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical string form.
func (id ApplicationID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a canonical ID string.
func (id *ApplicationID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "Pending"
	ApplicationStatusUnderReview ApplicationStatus = "Under Review"
	ApplicationStatusShortlisted ApplicationStatus = "Shortlisted"
	ApplicationStatusInterviewed ApplicationStatus = "Interviewed"
	ApplicationStatusHired       ApplicationStatus = "Hired"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"
)

// ApplicationStatuses lists every known status in review order.
var ApplicationStatuses = []ApplicationStatus{ //nolint: gochecknoglobals
	ApplicationStatusPending,
	ApplicationStatusUnderReview,
	ApplicationStatusShortlisted,
	ApplicationStatusInterviewed,
	ApplicationStatusHired,
	ApplicationStatusRejected,
}

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	for _, known := range ApplicationStatuses {
		if s == known {
			return true
		}
	}

	return false
}

// Application is a candidate's submission for a job.
type Application struct {
	ID     ApplicationID `json:"_id"`
	UserID UserID        `json:"userId"`
	JobID  string        `json:"jobId"`

	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CoverLetter     string `json:"coverLetter"`
	Experience      string `json:"experience"`
	CurrentCompany  string `json:"currentCompany"`
	CurrentJobTitle string `json:"currentJobTitle"`
	Education       string `json:"education"`
	LinkedinURL     string `json:"linkedinUrl"`
	PortfolioURL    string `json:"portfolioUrl"`

	Status ApplicationStatus `json:"status"`

	// ResumeID is nil when the candidate did not attach a résumé.
	ResumeID       *ResumeID `json:"resumeId,omitempty"`
	ResumeFileName string    `json:"resumeFileName,omitempty"`

	AppliedDate time.Time `json:"appliedDate"`
	UpdatedDate time.Time `json:"updatedDate"`
	// ReviewedDate is set the first time the status becomes Under Review.
	ReviewedDate time.Time `json:"reviewedDate,omitzero"`
}

// HiringProgress summarizes applications received by a business.
type HiringProgress struct {
	Total       int `json:"total"`
	Reviewed    int `json:"reviewed"`
	Shortlisted int `json:"shortlisted"`
	Interviewed int `json:"interviewed"`
	Hired       int `json:"hired"`
}
