// Package serrors attaches semantic kinds and client-safe messages to errors.
// Services return them, the HTTP layer turns the kind into a status code and
// the message into the response body. Causes never reach clients.
package serrors

import (
	"errors"
	"fmt"
)

// Error is a kinded error with an optional message and cause. errors.Is and
// errors.As see both the kind and the cause.
type Error struct {
	kind    Kind
	cause   error
	message string
}

// With returns an error of kind k carrying a formatted client message.
func With(k Kind, format string, args ...any) *Error {
	return &Error{kind: k, message: fmt.Sprintf(format, args...)}
}

// Wrap is like With but keeps cause in the chain for logs and errors.Is.
func Wrap(k Kind, cause error, format string, args ...any) *Error {
	return &Error{kind: k, cause: cause, message: fmt.Sprintf(format, args...)}
}

// KindOnly returns a bare error of kind k.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch {
	case e.message != "" && e.cause != nil:
		return e.message + ": " + e.cause.Error()
	case e.message != "":
		return e.message
	case e.cause != nil:
		return e.cause.Error()
	case e.kind != nil:
		return e.kind.Error()
	}

	return "unknown error"
}

// Unwrap exposes the kind and the cause to the errors package.
func (e *Error) Unwrap() []error {
	if e == nil {
		return nil
	}

	errs := make([]error, 0, 2)
	if e.kind != nil {
		errs = append(errs, e.kind)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}

	return errs
}

func (e *Error) Kind() Kind      { return e.kind }
func (e *Error) Message() string { return e.message }
func (e *Error) Cause() error    { return e.cause }

// KindOf finds the first kind in err's chain, ErrInternal when there is none.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// MessageOf returns the client message of the outermost *Error in err's
// chain. Errors without a message yield "".
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.message
	}

	return ""
}
