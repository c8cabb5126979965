package auth

import (
	"arbeit/pkg/domain"
	"arbeit/pkg/serrors"
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType distinguishes access from refresh tokens.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims are the claims carried by both token types.
type Claims struct {
	jwt.RegisteredClaims

	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	BID      string      `json:"bid,omitempty"`
	Type     TokenType   `json:"typ"`
}

// Principal converts verified claims to the authenticated subject.
func (c *Claims) Principal() (domain.Principal, error) {
	ID, err := uuid.Parse(c.Subject)
	if err != nil {
		return domain.Principal{}, serrors.Wrap(serrors.ErrInvalidToken, err, "invalid token subject")
	}

	return domain.Principal{
		ID:       ID,
		Username: c.Username,
		Role:     c.Role,
		BID:      c.BID,
	}, nil
}

// TokenPair is the result of a successful sign-in or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

// TokenOptions configure signing and verification.
type TokenOptions struct {
	// PrivateKey is a PEM encoded RSA key. It may be empty for verify-only use.
	PrivateKey string
	// PublicKey is a PEM encoded RSA key. It is derived from PrivateKey when empty.
	PublicKey  string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Tokens signs and verifies RS256 tokens.
type Tokens struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokens parses the configured keys.
func NewTokens(options TokenOptions) (*Tokens, error) {
	t := &Tokens{
		issuer:     options.Issuer,
		accessTTL:  options.AccessTTL,
		refreshTTL: options.RefreshTTL,
		now:        time.Now,
	}

	if options.PrivateKey != "" {
		key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(options.PrivateKey))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA private key: %w", err)
		}
		t.privateKey = key
		t.publicKey = &key.PublicKey
	}

	if options.PublicKey != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA public key: %w", err)
		}
		t.publicKey = key
	}

	if t.publicKey == nil {
		return nil, errors.New("either a private or a public key is required")
	}

	return t, nil
}

// AccessTTL is the lifetime of access tokens.
func (t *Tokens) AccessTTL() time.Duration { return t.accessTTL }

// RefreshTTL is the lifetime of refresh tokens.
func (t *Tokens) RefreshTTL() time.Duration { return t.refreshTTL }

// Issue signs a new access and refresh token for principal.
func (t *Tokens) Issue(principal domain.Principal) (*TokenPair, error) {
	access, err := t.sign(principal, TokenTypeAccess, t.accessTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := t.sign(principal, TokenTypeRefresh, t.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		AccessTTL:    t.accessTTL,
		RefreshTTL:   t.refreshTTL,
	}, nil
}

// Sign signs a single token with a custom lifetime.
func (t *Tokens) Sign(principal domain.Principal, typ TokenType, TTL time.Duration) (string, error) {
	return t.sign(principal, typ, TTL)
}

func (t *Tokens) sign(principal domain.Principal, typ TokenType, TTL time.Duration) (string, error) {
	if t.privateKey == nil {
		return "", errors.New("no private key configured")
	}

	now := t.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    t.issuer,
			Subject:   principal.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		Username: principal.Username,
		Role:     principal.Role,
		BID:      principal.BID,
		Type:     typ,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(t.privateKey)
	if err != nil {
		return "", fmt.Errorf("could not sign %s token: %w", typ, err)
	}

	return signed, nil
}

// Parse verifies token and requires it to be of type typ. Expired tokens
// fail with serrors.ErrTokenExpired, every other failure with
// serrors.ErrInvalidToken.
func (t *Tokens) Parse(token string, typ TokenType) (*Claims, error) {
	if token == "" {
		return nil, serrors.With(serrors.ErrInvalidToken, "no token provided")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	}
	if t.issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.publicKey, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, serrors.Wrap(serrors.ErrTokenExpired, err, "token expired")
		}

		return nil, serrors.Wrap(serrors.ErrInvalidToken, err, "invalid token")
	}

	if claims.Type != typ {
		return nil, serrors.With(serrors.ErrInvalidToken, "invalid token type")
	}

	if claims.ID == "" {
		return nil, serrors.With(serrors.ErrInvalidToken, "token has no id")
	}

	return &claims, nil
}

// remaining is the time left until the claims expire, used as the revocation TTL.
func (t *Tokens) remaining(claims *Claims) time.Duration {
	if claims.ExpiresAt == nil {
		return t.refreshTTL
	}

	left := claims.ExpiresAt.Sub(t.now())
	if left < time.Second {
		return time.Second
	}

	return left
}
