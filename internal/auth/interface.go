// Package auth signs candidates and businesses in and out, verifies company
// e-mail addresses and rotates token pairs.
package auth

import (
	"arbeit/pkg/domain"
	"context"
)

// Session is the outcome of a successful sign-in or refresh.
type Session struct {
	Principal domain.Principal
	Tokens    TokenPair
}

// BusinessRegistration holds the fields of a new business account.
type BusinessRegistration struct {
	Name         string
	Email        string
	CompanyName  string
	Address      string
	CompanyEmail string
	Password     string
}

// GoogleUser is the verified identity returned by Google.
type GoogleUser struct {
	Email         string
	VerifiedEmail bool
	Name          string
}

//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *
type Authenticator interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*Session, error)
	// Logout revokes both tokens of a session. Unusable tokens are ignored.
	Logout(ctx context.Context, accessToken, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
	// Check verifies an access token and rejects tokens revoked at logout.
	Check(ctx context.Context, accessToken string) (*domain.Principal, error)
	ChangePassword(ctx context.Context, principal domain.Principal, current, next string) error

	SendVerificationCode(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, code string) error
	RegisterBusiness(ctx context.Context, registration BusinessRegistration) (*domain.Business, error)
	LoginBusiness(ctx context.Context, companyEmail, password string) (*Session, error)

	// GoogleLoginURL returns the consent page URL carrying a fresh state.
	GoogleLoginURL(ctx context.Context) (string, error)
	GoogleCallback(ctx context.Context, state, code string) (*Session, error)
}

// GoogleProvider talks to Google's OAuth endpoints.
type GoogleProvider interface {
	AuthCodeURL(state string) string
	// Exchange trades an authorization code for the signed-in identity.
	Exchange(ctx context.Context, code string) (*GoogleUser, error)
}
