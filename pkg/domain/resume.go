package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResumeID uniquely identifies a stored résumé file.
type ResumeID uuid.UUID

func (id ResumeID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical string form.
func (id ResumeID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a canonical ID string.
func (id *ResumeID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }

// Resume is an uploaded résumé document.
type Resume struct {
	ID          ResumeID  `json:"id"`
	UserID      UserID    `json:"userId"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	Data        []byte    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}
