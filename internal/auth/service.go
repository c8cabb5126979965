package auth

import (
	"arbeit/internal/config"
	"arbeit/internal/notify"
	"arbeit/pkg/cache"
	"arbeit/pkg/domain"
	"arbeit/pkg/logger"
	"arbeit/pkg/serrors"
	"arbeit/pkg/storage"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const msgInvalidCredentials = "invalid username or password"

// Options configure password hashing and verification codes.
type Options struct {
	// BcryptCost is the bcrypt work factor.
	BcryptCost int
	// OTPTTL is the lifetime of an e-mailed verification code.
	OTPTTL time.Duration
	// OTPMaxAttempts is the number of wrong answers after which a code is dropped.
	OTPMaxAttempts int
	// VerifiedTTL is how long a verified company e-mail may be used to register.
	VerifiedTTL time.Duration
	// GoogleStateTTL bounds the time between the Google redirect and its callback.
	GoogleStateTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BcryptCost:     bcrypt.DefaultCost,
		OTPTTL:         cfg.OTP.TTL,
		OTPMaxAttempts: cfg.OTP.MaxAttempts,
		VerifiedTTL:    cfg.OTP.VerifiedTTL,
		GoogleStateTTL: cfg.Google.StateTTL,
	}
}

// Deps are the collaborators of the authenticator.
type Deps struct {
	Storage  storage.Storage
	Cache    cache.Cache
	Tokens   *Tokens
	Notifier *notify.Notifier
	// Google is optional; Google sign-in is unavailable without it.
	Google GoogleProvider
}

type authenticator struct {
	options  Options
	storage  storage.Storage
	cache    cache.Cache
	tokens   *Tokens
	notifier *notify.Notifier
	google   GoogleProvider
	validate *validator.Validate
}

// Ensure authenticator implements Authenticator.
var _ Authenticator = (*authenticator)(nil)

// New creates an Authenticator.
func New(deps Deps, options Options) Authenticator {
	if options.BcryptCost == 0 {
		options.BcryptCost = bcrypt.DefaultCost
	}

	return &authenticator{
		options:  options,
		storage:  deps.Storage,
		cache:    deps.Cache,
		tokens:   deps.Tokens,
		notifier: deps.Notifier,
		google:   deps.Google,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *authenticator) validateEmail(email, field string) error {
	if email == "" {
		return serrors.With(serrors.ErrBadRequest, "%s is required", field)
	}
	if err := a.validate.Var(email, "email"); err != nil {
		return serrors.With(serrors.ErrBadRequest, "%s must be a valid email address", field)
	}

	return nil
}

func userPrincipal(user *domain.User) domain.Principal {
	return domain.Principal{
		ID:       uuid.UUID(user.ID),
		Username: user.Username,
		Role:     user.Role,
	}
}

func businessPrincipal(business *domain.Business) domain.Principal {
	return domain.Principal{
		ID:       uuid.UUID(business.ID),
		Username: business.CompanyEmail,
		Role:     domain.RoleBusiness,
		BID:      business.BID,
	}
}

func (a *authenticator) session(principal domain.Principal) (*Session, error) {
	pair, err := a.tokens.Issue(principal)
	if err != nil {
		return nil, fmt.Errorf("could not issue tokens: %w", err)
	}

	return &Session{Principal: principal, Tokens: *pair}, nil
}

// Register creates a candidate account.
func (a *authenticator) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = normalizeEmail(username)
	if err := a.validateEmail(username, "username"); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password, a.options.BcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := a.storage.CreateUser(ctx, domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	})
	if err != nil {
		if storage.IsDuplicate(err, storage.FieldUsername) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "username already exists")
		}

		return nil, fmt.Errorf("could not create user: %w", err)
	}

	logger.Info(ctx, "user registered", zap.Stringer("userID", user.ID))

	return user, nil
}

// Login signs a candidate in with a username and password.
func (a *authenticator) Login(ctx context.Context, username, password string) (*Session, error) {
	username = normalizeEmail(username)
	if username == "" || password == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "username and password are required")
	}

	user, err := a.storage.UserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, msgInvalidCredentials)
	}

	ok, err := checkPassword(user.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, serrors.With(serrors.ErrUnauthorized, msgInvalidCredentials)
	}

	return a.session(userPrincipal(user))
}

// revoke marks a token as used up until it expires. Tokens that no longer
// parse cannot be replayed and are skipped.
func (a *authenticator) revoke(ctx context.Context, token string, typ TokenType) error {
	if token == "" {
		return nil
	}

	claims, err := a.tokens.Parse(token, typ)
	if err != nil {
		return nil //nolint: nilerr
	}

	if _, err := a.cache.RevokeToken(ctx, claims.ID, a.tokens.remaining(claims)); err != nil {
		return fmt.Errorf("could not revoke %s token: %w", typ, err)
	}

	return nil
}

// Logout revokes the access token so later requests with it are rejected and
// the refresh token so it cannot be rotated again.
func (a *authenticator) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if err := a.revoke(ctx, accessToken, TokenTypeAccess); err != nil {
		return err
	}

	return a.revoke(ctx, refreshToken, TokenTypeRefresh)
}

// Refresh consumes a refresh token and issues a new pair. Each refresh token
// can be used once.
func (a *authenticator) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	claims, err := a.tokens.Parse(refreshToken, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	revoked, err := a.cache.RevokeToken(ctx, claims.ID, a.tokens.remaining(claims))
	if err != nil {
		return nil, fmt.Errorf("could not revoke refresh token: %w", err)
	}
	if !revoked {
		logger.Warn(ctx, "refresh token reused", zap.String("jti", claims.ID), zap.String("subject", claims.Subject))

		return nil, serrors.With(serrors.ErrInvalidToken, "token has been revoked")
	}

	principal, err := claims.Principal()
	if err != nil {
		return nil, err
	}

	// re-read the account so that removed accounts cannot refresh forever.
	if principal.IsBusiness() {
		business, err := a.storage.BusinessByBID(ctx, principal.BID)
		if err != nil {
			return nil, fmt.Errorf("could not get business: %w", err)
		}
		if business == nil {
			return nil, serrors.With(serrors.ErrInvalidToken, "account no longer exists")
		}

		return a.session(businessPrincipal(business))
	}

	user, err := a.storage.UserByID(ctx, principal.UserID())
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrInvalidToken, "account no longer exists")
	}

	return a.session(userPrincipal(user))
}

// Check verifies an access token.
// Check fails open when the revocation lookup errors. Access tokens are short
// lived, so an outage of the cache does not sign everybody out.
func (a *authenticator) Check(ctx context.Context, accessToken string) (*domain.Principal, error) {
	claims, err := a.tokens.Parse(accessToken, TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	revoked, err := a.cache.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		logger.Warn(ctx, "could not check token revocation", zap.Error(err))
	}
	if revoked {
		return nil, serrors.With(serrors.ErrInvalidToken, "token has been revoked")
	}

	principal, err := claims.Principal()
	if err != nil {
		return nil, err
	}

	return &principal, nil
}

// ChangePassword replaces the password of a candidate account.
func (a *authenticator) ChangePassword(ctx context.Context, principal domain.Principal, current, next string) error {
	if principal.IsBusiness() {
		return serrors.With(serrors.ErrForbidden, "password change is only available for candidate accounts")
	}
	if current == "" || next == "" {
		return serrors.With(serrors.ErrBadRequest, "current and new password are required")
	}
	if err := validatePassword(next); err != nil {
		return err
	}
	if current == next {
		return serrors.With(serrors.ErrBadRequest, "new password must be different from the current password")
	}

	user, err := a.storage.UserByID(ctx, principal.UserID())
	if err != nil {
		return fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return serrors.With(serrors.ErrNotFound, "user not found")
	}

	ok, err := checkPassword(user.PasswordHash, current)
	if err != nil {
		return err
	}
	if !ok {
		return serrors.With(serrors.ErrBadRequest, "current password is incorrect")
	}

	hash, err := hashPassword(next, a.options.BcryptCost)
	if err != nil {
		return err
	}

	found, err := a.storage.UpdatePassword(ctx, user.ID, hash)
	if err != nil {
		return fmt.Errorf("could not update password: %w", err)
	}
	if !found {
		return serrors.With(serrors.ErrNotFound, "user not found")
	}

	logger.Info(ctx, "password changed", zap.Stringer("userID", user.ID))

	return nil
}
