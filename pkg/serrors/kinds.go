package serrors

// Kind is a semantic error category. Kinds are sentinels: compare them with
// errors.Is, extract them with errors.As or KindOf.
type Kind interface {
	error
	isKind()
}

type kind string

func (k kind) Error() string { return string(k) }
func (kind) isKind()         {}

// NewKind registers a new category. The name is what API clients see as the
// error code, so keep it stable and upper case.
func NewKind(name string) Kind { return kind(name) }

var (
	ErrNotFound     = NewKind("NOT_FOUND")
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden is for authenticated callers lacking the right role or ownership.
	ErrForbidden   = NewKind("FORBIDDEN")
	ErrBadRequest  = NewKind("BAD_REQUEST")
	ErrConflict    = NewKind("CONFLICT")
	ErrInternal    = NewKind("INTERNAL")
	ErrTimeout     = NewKind("TIMEOUT")
	ErrUnavailable = NewKind("UNAVAILABLE")
	ErrRateLimited = NewKind("RATE_LIMITED")

	// ErrTokenExpired is a well-formed token past its lifetime. Clients
	// react by refreshing the session.
	ErrTokenExpired = NewKind("TOKEN_EXPIRED")
	// ErrInvalidToken covers malformed, forged, revoked and mistyped tokens.
	// Clients react by signing in again.
	ErrInvalidToken = NewKind("INVALID_TOKEN")
)
