package profile

import (
	"arbeit/pkg/domain"
	"arbeit/pkg/serrors"
	"arbeit/pkg/storage"
	"context"
	"fmt"
	"strings"
)

type profiles struct {
	storage storage.UserStorage
}

// Ensure profiles implements Profiles.
var _ Profiles = (*profiles)(nil)

// New creates a Profiles service.
func New(storage storage.UserStorage) Profiles {
	return &profiles{storage: storage}
}

func requireCandidate(principal domain.Principal) error {
	if principal.Role != domain.RoleUser {
		return serrors.With(serrors.ErrForbidden, "profiles are only available for candidate accounts")
	}

	return nil
}

func (p *profiles) Get(ctx context.Context, principal domain.Principal) (*domain.User, error) {
	if err := requireCandidate(principal); err != nil {
		return nil, err
	}

	user, err := p.storage.UserByID(ctx, principal.UserID())
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}
	user.PasswordHash = ""

	return user, nil
}

func trimList(items []string) []string {
	if items == nil {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

func normalizeProfile(profile *domain.Profile) error {
	profile.FullName = strings.TrimSpace(profile.FullName)
	if profile.FullName == "" {
		return serrors.With(serrors.ErrBadRequest, "full name is required")
	}

	for _, link := range []struct {
		name  string
		value *string
	}{
		{"github profile", &profile.GithubProfile},
		{"linkedin profile", &profile.LinkedinProfile},
		{"portfolio website", &profile.PortfolioWebsite},
	} {
		if strings.TrimSpace(*link.value) == "" {
			*link.value = ""

			continue
		}

		normalized, err := NormalizeURL(*link.value)
		if err != nil {
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid URL format for %s", link.name)
		}
		*link.value = normalized
	}

	profile.Skills = trimList(profile.Skills)
	profile.Languages = trimList(profile.Languages)
	profile.Frameworks = trimList(profile.Frameworks)
	profile.Databases = trimList(profile.Databases)
	profile.Tools = trimList(profile.Tools)

	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setList(dst *[]string, v []string) {
	if v != nil {
		*dst = v
	}
}

func (u Updates) apply(p *domain.Profile) {
	setString(&p.FullName, u.FullName)
	setString(&p.Phone, u.Phone)
	setString(&p.Title, u.Title)
	setString(&p.Bio, u.Bio)
	setString(&p.YearsOfExperience, u.YearsOfExperience)
	setString(&p.GithubProfile, u.GithubProfile)
	setString(&p.LinkedinProfile, u.LinkedinProfile)
	setString(&p.PortfolioWebsite, u.PortfolioWebsite)
	setString(&p.PreferredWorkLocation, u.PreferredWorkLocation)
	setString(&p.WorkType, u.WorkType)
	setString(&p.ExperienceLevel, u.ExperienceLevel)
	setString(&p.PrimaryRole, u.PrimaryRole)
	setList(&p.Skills, u.Skills)
	setList(&p.Languages, u.Languages)
	setList(&p.Frameworks, u.Frameworks)
	setList(&p.Databases, u.Databases)
	setList(&p.Tools, u.Tools)
}

// Update applies the sent fields over the stored profile of principal and
// validates the result. Account fields such as the username, password and
// role are not part of a profile and stay untouched.
func (p *profiles) Update(ctx context.Context,
	principal domain.Principal,
	updates Updates) (*UpdateResult, error) {
	if err := requireCandidate(principal); err != nil {
		return nil, err
	}

	user, err := p.storage.UserByID(ctx, principal.UserID())
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user profile not found")
	}

	profile := user.Profile
	updates.apply(&profile)
	if err := normalizeProfile(&profile); err != nil {
		return nil, err
	}

	res, err := p.storage.UpdateProfile(ctx, principal.UserID(), profile)
	if err != nil {
		return nil, fmt.Errorf("could not update profile: %w", err)
	}
	if !res.Matched {
		return nil, serrors.With(serrors.ErrNotFound, "user profile not found")
	}
	if !res.Modified {
		return nil, serrors.With(serrors.ErrBadRequest, "no changes were made to the profile")
	}

	return &UpdateResult{ModifiedCount: 1}, nil
}
