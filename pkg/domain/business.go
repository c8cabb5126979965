package domain

import (
	"time"

	"github.com/google/uuid"
)

// BusinessID is the internal identifier of a business account.
type BusinessID uuid.UUID

func (id BusinessID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical string form.
func (id BusinessID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a canonical ID string.
func (id *BusinessID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }

// Business is a company account able to post jobs.
type Business struct {
	ID BusinessID `json:"id"`
	// BID is the public business identifier handed out at registration.
	BID string `json:"bid"`

	// Name and Email identify the person who registered the company.
	Name  string `json:"name"`
	Email string `json:"email"`

	CompanyName string `json:"companyName"`
	Address     string `json:"address"`
	// CompanyEmail is the verified login identifier. It is unique.
	CompanyEmail string `json:"companyEmail"`
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
