package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents whether a posting accepts applications.
type JobStatus string

const (
	// JobStatusActive postings are listed publicly and accept applications.
	JobStatusActive JobStatus = "Active"
	// JobStatusClosed postings are hidden from candidates.
	JobStatusClosed JobStatus = "Closed"
)

// Valid reports whether s is a known job status.
func (s JobStatus) Valid() bool {
	return s == JobStatusActive || s == JobStatusClosed
}

// Toggle returns the opposite status.
func (s JobStatus) Toggle() JobStatus {
	if s == JobStatusActive {
		return JobStatusClosed
	}

	return JobStatusActive
}

// Job is a posting published by a business.
type Job struct {
	ID uuid.UUID `json:"_id"`
	// JobID is the short public identifier (three digits) used in URLs.
	JobID string `json:"jobId"`

	BID          string `json:"-"`
	CompanyName  string `json:"companyName"`
	CompanyEmail string `json:"-"`

	Title         string `json:"title"`
	Location      string `json:"location"`
	JobType       string `json:"jobType"`
	Department    string `json:"department"`
	Description   string `json:"description"`
	Requirements  string `json:"requirements"`
	Benefits      string `json:"benefits"`
	Qualification string `json:"qualification"`

	SalaryMin  int64 `json:"salaryMin"`
	SalaryMax  int64 `json:"salaryMax"`
	HideSalary bool  `json:"hideSalary"`

	HiringProcess      []string `json:"hiringProcess"`
	ScreeningQuestions []string `json:"screeningQuestions"`
	AdditionalInfo     string   `json:"additionalInfo"`

	Status     JobStatus `json:"status"`
	Applicants int       `json:"applicants"`

	PostedDate time.Time `json:"postedDate"`
	UpdatedAt  time.Time `json:"updatedAt,omitzero"`
}
