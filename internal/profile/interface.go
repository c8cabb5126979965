// Package profile reads and edits candidate profiles.
package profile

import (
	"arbeit/pkg/domain"
	"context"
)

// UpdateResult reports how many profiles an update changed.
type UpdateResult struct {
	ModifiedCount int
}

// Updates carries the profile fields a client sent. Nil fields keep their
// stored value. An empty list clears the stored one.
type Updates struct {
	FullName              *string  `json:"fullName"`
	Phone                 *string  `json:"phone"`
	Title                 *string  `json:"title"`
	Bio                   *string  `json:"bio"`
	YearsOfExperience     *string  `json:"yearsOfExperience"`
	Skills                []string `json:"skills"`
	GithubProfile         *string  `json:"githubProfile"`
	LinkedinProfile       *string  `json:"linkedinProfile"`
	PortfolioWebsite      *string  `json:"portfolioWebsite"`
	PreferredWorkLocation *string  `json:"preferredWorkLocation"`
	WorkType              *string  `json:"workType"`
	ExperienceLevel       *string  `json:"experienceLevel"`
	PrimaryRole           *string  `json:"primaryRole"`
	Languages             []string `json:"languages"`
	Frameworks            []string `json:"frameworks"`
	Databases             []string `json:"databases"`
	Tools                 []string `json:"tools"`
}

//go:generate mockgen -package mockprofile -source=interface.go -destination=mock/mockprofile.go *
type Profiles interface {
	// Get returns the account of principal without its password hash.
	Get(ctx context.Context, principal domain.Principal) (*domain.User, error)
	// Update merges updates into the stored profile of principal.
	Update(ctx context.Context, principal domain.Principal, updates Updates) (*UpdateResult, error)
}
