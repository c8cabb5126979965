package auth

import (
	"arbeit/pkg/cache"
	"arbeit/pkg/domain"
	"arbeit/pkg/logger"
	"arbeit/pkg/serrors"
	"arbeit/pkg/storage"
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"go.uber.org/zap"
)

const (
	otpDigits   = 6
	bidDigits   = 8
	bidPrefix   = "B"
	bidAttempts = 5
)

// randomDigits returns n random decimal digits, zero padded.
func randomDigits(n int) (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	v, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("could not generate random number: %w", err)
	}

	return fmt.Sprintf("%0*d", n, v), nil
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// SendVerificationCode e-mails a new code to a company address that is not
// registered yet. A new code replaces the pending one.
func (a *authenticator) SendVerificationCode(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if err := a.validateEmail(email, "email"); err != nil {
		return err
	}

	existing, err := a.storage.BusinessByCompanyEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("could not get business: %w", err)
	}
	if existing != nil {
		return serrors.With(serrors.ErrConflict, "company email already registered")
	}

	code, err := randomDigits(otpDigits)
	if err != nil {
		return err
	}

	if err := a.cache.StoreOTP(ctx, email, code, a.options.OTPTTL); err != nil {
		return fmt.Errorf("could not store verification code: %w", err)
	}

	if err := a.notifier.VerificationCode(ctx, a.storage, email, code, a.options.OTPTTL); err != nil {
		return err
	}

	logger.Info(ctx, "verification code sent", zap.String("email", email))

	return nil
}

// VerifyCode checks a code sent by SendVerificationCode and marks the e-mail
// as verified on success.
func (a *authenticator) VerifyCode(ctx context.Context, email, code string) error {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return serrors.With(serrors.ErrBadRequest, "email and code are required")
	}
	if !isDigits(code, otpDigits) {
		return serrors.With(serrors.ErrBadRequest, "verification code must be %d digits", otpDigits)
	}

	result, err := a.cache.VerifyOTP(ctx, email, code, a.options.OTPMaxAttempts)
	if err != nil {
		return fmt.Errorf("could not verify code: %w", err)
	}

	switch result {
	case cache.OTPValid:
		if err := a.cache.MarkVerified(ctx, email, a.options.VerifiedTTL); err != nil {
			return fmt.Errorf("could not mark email as verified: %w", err)
		}

		return nil
	case cache.OTPMismatch:
		return serrors.With(serrors.ErrBadRequest, "invalid verification code")
	case cache.OTPExhausted:
		return serrors.With(serrors.ErrBadRequest, "too many failed attempts, request a new code")
	default:
		return serrors.With(serrors.ErrBadRequest, "verification code expired or not found")
	}
}

func (a *authenticator) validateRegistration(r *BusinessRegistration) error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = normalizeEmail(r.Email)
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.Address = strings.TrimSpace(r.Address)
	r.CompanyEmail = normalizeEmail(r.CompanyEmail)

	if r.Name == "" || r.Email == "" || r.CompanyName == "" ||
		r.Address == "" || r.CompanyEmail == "" || r.Password == "" {
		return serrors.With(serrors.ErrBadRequest, "all fields are required")
	}
	if err := a.validateEmail(r.Email, "email"); err != nil {
		return err
	}
	if err := a.validateEmail(r.CompanyEmail, "companyEmail"); err != nil {
		return err
	}

	return validatePassword(r.Password)
}

// RegisterBusiness creates a business account for a verified company e-mail
// and allocates its public BID.
func (a *authenticator) RegisterBusiness(ctx context.Context,
	registration BusinessRegistration) (*domain.Business, error) {
	if err := a.validateRegistration(&registration); err != nil {
		return nil, err
	}

	existing, err := a.storage.BusinessByCompanyEmail(ctx, registration.CompanyEmail)
	if err != nil {
		return nil, fmt.Errorf("could not get business: %w", err)
	}
	if existing != nil {
		return nil, serrors.With(serrors.ErrConflict, "company email already registered")
	}

	verified, err := a.cache.ConsumeVerified(ctx, registration.CompanyEmail)
	if err != nil {
		return nil, fmt.Errorf("could not check email verification: %w", err)
	}
	if !verified {
		return nil, serrors.With(serrors.ErrForbidden, "company email has not been verified")
	}

	business, err := a.createBusiness(ctx, registration)
	if err != nil {
		// the mark was taken above, hand it back unless the company now exists
		if !storage.IsDuplicate(err, storage.FieldCompanyEmail) {
			a.restoreVerified(ctx, registration.CompanyEmail)
		}

		return nil, err
	}

	logger.Info(ctx, "business registered", zap.String("bid", business.BID))

	return business, nil
}

// restoreVerified marks email verified again after a failed registration so
// the company does not need a new code.
func (a *authenticator) restoreVerified(ctx context.Context, email string) {
	if err := a.cache.MarkVerified(context.WithoutCancel(ctx), email, a.options.VerifiedTTL); err != nil {
		logger.Warn(ctx, "could not restore email verification", zap.String("email", email), zap.Error(err))
	}
}

// createBusiness stores the account under a fresh BID, retrying on collisions.
func (a *authenticator) createBusiness(ctx context.Context,
	registration BusinessRegistration) (*domain.Business, error) {
	hash, err := hashPassword(registration.Password, a.options.BcryptCost)
	if err != nil {
		return nil, err
	}

	for range bidAttempts {
		digits, err := randomDigits(bidDigits)
		if err != nil {
			return nil, err
		}

		business, err := a.storage.CreateBusiness(ctx, domain.Business{
			BID:          bidPrefix + digits,
			Name:         registration.Name,
			Email:        registration.Email,
			CompanyName:  registration.CompanyName,
			Address:      registration.Address,
			CompanyEmail: registration.CompanyEmail,
			PasswordHash: hash,
		})
		switch {
		case err == nil:
			return business, nil
		case storage.IsDuplicate(err, storage.FieldBID):
			continue
		case storage.IsDuplicate(err, storage.FieldCompanyEmail):
			return nil, serrors.Wrap(serrors.ErrConflict, err, "company email already registered")
		default:
			return nil, fmt.Errorf("could not create business: %w", err)
		}
	}

	return nil, serrors.With(serrors.ErrConflict, "could not allocate a unique business id")
}

// LoginBusiness signs a business in with its company e-mail and password.
func (a *authenticator) LoginBusiness(ctx context.Context, companyEmail, password string) (*Session, error) {
	companyEmail = normalizeEmail(companyEmail)
	if companyEmail == "" || password == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "company email and password are required")
	}

	business, err := a.storage.BusinessByCompanyEmail(ctx, companyEmail)
	if err != nil {
		return nil, fmt.Errorf("could not get business: %w", err)
	}
	if business == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid company email or password")
	}

	ok, err := checkPassword(business.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid company email or password")
	}

	return a.session(businessPrincipal(business))
}
