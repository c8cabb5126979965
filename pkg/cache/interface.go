// Package cache keeps short-lived state in Redis: one-time codes, revoked
// token IDs, rate-limit buckets and cached query results.
//
//go:generate mockgen -package mockcache -source=interface.go -destination=mock/mockcache.go *
package cache

import (
	"context"
	"time"
)

// OTPResult is the outcome of checking a one-time code.
type OTPResult int

const (
	// OTPValid means the code matched and has been consumed.
	OTPValid OTPResult = iota
	// OTPMismatch means the code did not match. The stored code remains usable.
	OTPMismatch
	// OTPMissing means no code is pending, either never sent or expired.
	OTPMissing
	// OTPExhausted means too many wrong attempts; the code has been discarded.
	OTPExhausted
)

// OTPStore keeps one-time verification codes per e-mail address.
type OTPStore interface {
	// StoreOTP saves code for email, replacing any pending one.
	StoreOTP(ctx context.Context, email, code string, ttl time.Duration) error
	// VerifyOTP compares code with the pending one. After maxAttempts wrong
	// answers the pending code is dropped.
	VerifyOTP(ctx context.Context, email, code string, maxAttempts int) (OTPResult, error)
	// MarkVerified records that email passed verification.
	MarkVerified(ctx context.Context, email string, ttl time.Duration) error
	// ConsumeVerified reports whether email is verified and clears the mark.
	ConsumeVerified(ctx context.Context, email string) (bool, error)
}

// TokenStore tracks revoked token IDs until the tokens would expire anyway.
type TokenStore interface {
	// RevokeToken marks jti as revoked. It reports false when the token was
	// already revoked, which makes refresh rotation single use.
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) (bool, error)
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

// RateLimitResult contains the result of a rate limit check.
type RateLimitResult struct {
	Allowed    bool
	Limit      int
	Remaining  int64
	ResetAt    time.Time
	RetryAfter time.Duration
}

// RateLimiter implements a token bucket per scope and subject.
type RateLimiter interface {
	// CheckRateLimit takes one token from the bucket of subject within scope.
	// Buckets refill at ratePerMinute and hold at most burst tokens.
	CheckRateLimit(ctx context.Context, scope, subject string, ratePerMinute, burst int) (*RateLimitResult, error)
}

// Store caches JSON encoded values.
type Store interface {
	// GetJSON decodes the value at key into dst. It reports false on a miss
	// and treats undecodable entries as misses.
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Cache combines every capability backed by the same Redis client.
type Cache interface {
	OTPStore
	TokenStore
	RateLimiter
	Store

	Ping(ctx context.Context) error
	Close() error
}
