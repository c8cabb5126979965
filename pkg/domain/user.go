package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a candidate account.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical string form.
func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a canonical ID string.
func (id *UserID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }

// Role is the kind of account a token was issued for.
type Role string

const (
	// RoleUser is a candidate browsing and applying to jobs.
	RoleUser Role = "user"
	// RoleBusiness is a company posting jobs and reviewing applicants.
	RoleBusiness Role = "business"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleBusiness
}

// Profile is the free-form part of a candidate account edited on the
// settings page.
type Profile struct {
	FullName              string   `json:"fullName,omitempty"`
	Phone                 string   `json:"phone,omitempty"`
	Title                 string   `json:"title,omitempty"`
	Bio                   string   `json:"bio,omitempty"`
	YearsOfExperience     string   `json:"yearsOfExperience,omitempty"`
	Skills                []string `json:"skills,omitempty"`
	GithubProfile         string   `json:"githubProfile,omitempty"`
	LinkedinProfile       string   `json:"linkedinProfile,omitempty"`
	PortfolioWebsite      string   `json:"portfolioWebsite,omitempty"`
	PreferredWorkLocation string   `json:"preferredWorkLocation,omitempty"`
	WorkType              string   `json:"workType,omitempty"`
	ExperienceLevel       string   `json:"experienceLevel,omitempty"`
	PrimaryRole           string   `json:"primaryRole,omitempty"`
	Languages             []string `json:"languages,omitempty"`
	Frameworks            []string `json:"frameworks,omitempty"`
	Databases             []string `json:"databases,omitempty"`
	Tools                 []string `json:"tools,omitempty"`
}

// User is a candidate account.
type User struct {
	ID UserID `json:"id"`
	// Username is the login identifier, an e-mail address. It is unique.
	Username string `json:"username"`
	// PasswordHash is the bcrypt hash of the password. It is empty for
	// accounts created through Google sign-in.
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`

	Profile Profile `json:"profile"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}
