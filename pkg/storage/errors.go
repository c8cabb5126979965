package storage

import (
	"errors"
	"fmt"
)

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicate is returned when a write would violate a uniqueness rule.
	ErrDuplicate = errors.New("duplicate")
)

// Fields reported by DuplicateError.
const (
	FieldUsername     = "username"
	FieldBID          = "bid"
	FieldCompanyEmail = "company_email"
	FieldJobID        = "job_id"
	FieldApplication  = "application"
)

// DuplicateError reports which unique field a failed write collided on. It
// matches ErrDuplicate with errors.Is.
type DuplicateError struct {
	Field string
	Err   error
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s: %v", e.Field, e.Err)
}

func (e *DuplicateError) Unwrap() error { return e.Err }

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

// IsDuplicate reports whether err is a uniqueness violation on field. An empty
// field matches any duplicate.
func IsDuplicate(err error, field string) bool {
	var dup *DuplicateError
	if !errors.As(err, &dup) {
		return false
	}

	return field == "" || dup.Field == field
}
