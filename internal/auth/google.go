package auth

import (
	"arbeit/pkg/domain"
	"arbeit/pkg/logger"
	"arbeit/pkg/serrors"
	"arbeit/pkg/storage"
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// GoogleOptions configure the OAuth client used for Google sign-in.
type GoogleOptions struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// Endpoint overrides Google's OAuth endpoint. Zero means google.Endpoint.
	Endpoint oauth2.Endpoint
}

type googleProvider struct {
	config  *oauth2.Config
	options []option.ClientOption
}

// NewGoogleProvider creates a GoogleProvider. The client options are applied
// to the userinfo API client.
func NewGoogleProvider(options GoogleOptions, clientOptions ...option.ClientOption) GoogleProvider {
	endpoint := options.Endpoint
	if endpoint.TokenURL == "" {
		endpoint = google.Endpoint
	}

	return &googleProvider{
		config: &oauth2.Config{
			ClientID:     options.ClientID,
			ClientSecret: options.ClientSecret,
			RedirectURL:  options.RedirectURL,
			Endpoint:     endpoint,
			Scopes: []string{
				"openid",
				googleoauth2.UserinfoEmailScope,
				googleoauth2.UserinfoProfileScope,
			},
		},
		options: clientOptions,
	}
}

func (g *googleProvider) AuthCodeURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (g *googleProvider) Exchange(ctx context.Context, code string) (*GoogleUser, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("could not exchange code: %w", err)
	}

	opts := append([]option.ClientOption{
		option.WithTokenSource(g.config.TokenSource(ctx, token)),
	}, g.options...)
	svc, err := googleoauth2.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create userinfo client: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("could not get userinfo: %w", err)
	}

	return &GoogleUser{
		Email:         info.Email,
		VerifiedEmail: info.VerifiedEmail != nil && *info.VerifiedEmail,
		Name:          info.Name,
	}, nil
}

func googleStateKey(state string) string { return "oauth-state:" + state }

// GoogleLoginURL stores a random state and returns the consent page URL.
func (a *authenticator) GoogleLoginURL(ctx context.Context) (string, error) {
	if a.google == nil {
		return "", serrors.With(serrors.ErrUnavailable, "google sign-in is not configured")
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate state: %w", err)
	}
	state := base64.RawURLEncoding.EncodeToString(buf)

	if err := a.cache.SetJSON(ctx, googleStateKey(state), true, a.options.GoogleStateTTL); err != nil {
		return "", fmt.Errorf("could not store state: %w", err)
	}

	return a.google.AuthCodeURL(state), nil
}

// GoogleCallback validates the state, resolves the Google identity and signs
// the matching candidate in, creating the account on first use.
func (a *authenticator) GoogleCallback(ctx context.Context, state, code string) (*Session, error) {
	if a.google == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "google sign-in is not configured")
	}
	if state == "" || code == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "no code provided")
	}

	var pending bool
	found, err := a.cache.GetJSON(ctx, googleStateKey(state), &pending)
	if err != nil {
		return nil, fmt.Errorf("could not get state: %w", err)
	}
	if !found || !pending {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid or expired state")
	}
	if err := a.cache.Delete(ctx, googleStateKey(state)); err != nil {
		return nil, fmt.Errorf("could not delete state: %w", err)
	}

	identity, err := a.google.Exchange(ctx, code)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "authentication failed")
	}
	if !identity.VerifiedEmail || identity.Email == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "google account email is not verified")
	}

	user, err := a.googleUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	return a.session(userPrincipal(user))
}

func (a *authenticator) googleUser(ctx context.Context, identity *GoogleUser) (*domain.User, error) {
	email := normalizeEmail(identity.Email)

	user, err := a.storage.UserByUsername(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	user, err = a.storage.CreateUser(ctx, domain.User{
		Username: email,
		Role:     domain.RoleUser,
		Profile:  domain.Profile{FullName: strings.TrimSpace(identity.Name)},
	})
	if err == nil {
		logger.Info(ctx, "user registered with google", zap.Stringer("userID", user.ID))

		return user, nil
	}
	if !storage.IsDuplicate(err, storage.FieldUsername) {
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	// a concurrent callback created the account first.
	user, err = a.storage.UserByUsername(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrConflict, "could not create user")
	}

	return user, nil
}
