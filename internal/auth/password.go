package auth

import (
	"arbeit/pkg/serrors"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// bcrypt ignores everything past 72 bytes, longer inputs are rejected.
const maxPasswordLength = 72

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return serrors.With(serrors.ErrBadRequest, "password must be at least %d characters long", MinPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return serrors.With(serrors.ErrBadRequest, "password must be at most %d bytes long", maxPasswordLength)
	}

	return nil
}

func hashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %w", err)
	}

	return string(hash), nil
}

// checkPassword reports whether password matches hash. An empty hash never
// matches, which keeps password sign-in closed for Google-only accounts.
func checkPassword(hash, password string) (bool, error) {
	if hash == "" {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("could not compare password: %w", err)
	}
}
