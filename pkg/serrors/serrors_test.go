package serrors_test

import (
	"arbeit/pkg/serrors"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type dbError struct{ code string }

func (e *dbError) Error() string { return "db error " + e.code }

func TestError_String(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"message", serrors.With(serrors.ErrNotFound, "job %s not found", "101"), "job 101 not found"},
		{"message and cause", serrors.Wrap(serrors.ErrUnavailable, cause, "could not reach gemini"),
			"could not reach gemini: connection reset"},
		{"cause only", serrors.Wrap(serrors.ErrInternal, cause, ""), "connection reset"},
		{"kind only", serrors.KindOnly(serrors.ErrTokenExpired), "TOKEN_EXPIRED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Chain(t *testing.T) {
	cause := &dbError{code: "23505"}
	err := fmt.Errorf("could not create user: %w",
		serrors.Wrap(serrors.ErrConflict, cause, "username is already taken"))

	require.ErrorIs(t, err, serrors.ErrConflict)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, serrors.ErrNotFound)

	var target *dbError
	require.ErrorAs(t, err, &target)
	require.Equal(t, "23505", target.code)

	var k serrors.Kind
	require.ErrorAs(t, err, &k)
	require.Equal(t, serrors.ErrConflict, k)
}

func TestError_Accessors(t *testing.T) {
	cause := errors.New("boom")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "invalid username or password")

	require.Equal(t, serrors.ErrUnauthorized, err.Kind())
	require.Equal(t, "invalid username or password", err.Message())
	require.Equal(t, cause, err.Cause())
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(serrors.With(serrors.ErrConflict, "taken")))
	require.Equal(t, serrors.ErrTokenExpired,
		serrors.KindOf(fmt.Errorf("outer: %w", serrors.KindOnly(serrors.ErrTokenExpired))))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrInvalidToken, serrors.KindOf(serrors.ErrInvalidToken))
}

func TestMessageOf(t *testing.T) {
	err := fmt.Errorf("handler: %w", serrors.With(serrors.ErrBadRequest, "fullName is required"))
	require.Equal(t, "fullName is required", serrors.MessageOf(err))
	require.Empty(t, serrors.MessageOf(serrors.KindOnly(serrors.ErrNotFound)))
	require.Empty(t, serrors.MessageOf(errors.New("plain")))
}

func TestNewKind_Distinct(t *testing.T) {
	require.NotEqual(t, serrors.ErrTokenExpired, serrors.ErrInvalidToken)
	require.Equal(t, serrors.NewKind("NOT_FOUND"), serrors.ErrNotFound)
	require.Equal(t, "RATE_LIMITED", serrors.ErrRateLimited.Error())
}
