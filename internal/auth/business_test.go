package auth_test

import (
	"arbeit/internal/auth"
	"arbeit/internal/notify"
	"arbeit/pkg/cache"
	"arbeit/pkg/domain"
	"arbeit/pkg/serrors"
	"arbeit/pkg/storage"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testRegistration() auth.BusinessRegistration {
	return auth.BusinessRegistration{
		Name:         "Bob Owner",
		Email:        "bob@acme.test",
		CompanyName:  "Acme",
		Address:      "1 Main St",
		CompanyEmail: "HR@Acme.test",
		Password:     "s3cretpass",
	}
}

func TestAuth_SendVerificationCode(t *testing.T) {
	ta := newTestAuth(t)
	var stored string

	ta.storage.EXPECT().BusinessByCompanyEmail(gomock.Any(), "hr@acme.test").Return(nil, nil)
	ta.cache.EXPECT().StoreOTP(gomock.Any(), "hr@acme.test", gomock.Any(), 10*time.Minute).DoAndReturn(
		func(_ context.Context, _, code string, _ time.Duration) error {
			require.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)
			stored = code

			return nil
		})
	ta.storage.EXPECT().AddTask(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			email := args.(notify.EmailArgs)
			require.Equal(t, "hr@acme.test", email.To)
			require.Contains(t, email.Body, stored)

			return true, nil
		})

	require.NoError(t, ta.auth.SendVerificationCode(context.Background(), " HR@acme.test"))
}

func TestAuth_SendVerificationCode_AlreadyRegistered(t *testing.T) {
	ta := newTestAuth(t)

	ta.storage.EXPECT().BusinessByCompanyEmail(gomock.Any(), "hr@acme.test").Return(&domain.Business{BID: "B1"}, nil)

	err := ta.auth.SendVerificationCode(context.Background(), "hr@acme.test")
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestAuth_SendVerificationCode_InvalidEmail(t *testing.T) {
	ta := newTestAuth(t)

	err := ta.auth.SendVerificationCode(context.Background(), "nope")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestAuth_VerifyCode(t *testing.T) {
	tests := []struct {
		name    string
		result  cache.OTPResult
		wantErr error
		message string
	}{
		{name: "valid", result: cache.OTPValid},
		{name: "mismatch", result: cache.OTPMismatch, wantErr: serrors.ErrBadRequest, message: "invalid verification code"},
		{name: "missing", result: cache.OTPMissing, wantErr: serrors.ErrBadRequest,
			message: "verification code expired or not found"},
		{name: "exhausted", result: cache.OTPExhausted, wantErr: serrors.ErrBadRequest,
			message: "too many failed attempts, request a new code"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ta := newTestAuth(t)

			ta.cache.EXPECT().VerifyOTP(gomock.Any(), "hr@acme.test", "123456", 5).Return(tc.result, nil)
			if tc.result == cache.OTPValid {
				ta.cache.EXPECT().MarkVerified(gomock.Any(), "hr@acme.test", 30*time.Minute).Return(nil)
			}

			err := ta.auth.VerifyCode(context.Background(), "hr@acme.test", "123456")
			if tc.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tc.wantErr)
			require.Equal(t, tc.message, serrors.MessageOf(err))
		})
	}
}

func TestAuth_VerifyCode_Format(t *testing.T) {
	ta := newTestAuth(t)

	require.ErrorIs(t, ta.auth.VerifyCode(context.Background(), "hr@acme.test", "12ab56"), serrors.ErrBadRequest)
	require.ErrorIs(t, ta.auth.VerifyCode(context.Background(), "", "123456"), serrors.ErrBadRequest)
}

func TestAuth_RegisterBusiness(t *testing.T) {
	ta := newTestAuth(t)

	ta.storage.EXPECT().BusinessByCompanyEmail(gomock.Any(), "hr@acme.test").Return(nil, nil)
	ta.cache.EXPECT().ConsumeVerified(gomock.Any(), "hr@acme.test").Return(true, nil)
	gomock.InOrder(
		// first BID collides
		ta.storage.EXPECT().CreateBusiness(gomock.Any(), gomock.Any()).Return(nil,
			&storage.DuplicateError{Field: storage.FieldBID, Err: errors.New("unique violation")}),
		ta.storage.EXPECT().CreateBusiness(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b domain.Business) (*domain.Business, error) {
				require.Regexp(t, regexp.MustCompile(`^B\d{8}$`), b.BID)
				require.Equal(t, "hr@acme.test", b.CompanyEmail)
				require.Equal(t, "Acme", b.CompanyName)
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(b.PasswordHash), []byte("s3cretpass")))
				b.ID = domain.BusinessID(uuid.New())

				return &b, nil
			}),
	)

	business, err := ta.auth.RegisterBusiness(context.Background(), testRegistration())
	require.NoError(t, err)
	require.NotEmpty(t, business.BID)
}

func TestAuth_RegisterBusiness_NotVerified(t *testing.T) {
	ta := newTestAuth(t)

	ta.storage.EXPECT().BusinessByCompanyEmail(gomock.Any(), "hr@acme.test").Return(nil, nil)
	ta.cache.EXPECT().ConsumeVerified(gomock.Any(), "hr@acme.test").Return(false, nil)

	_, err := ta.auth.RegisterBusiness(context.Background(), testRegistration())
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestAuth_RegisterBusiness_MissingField(t *testing.T) {
	ta := newTestAuth(t)
	reg := testRegistration()
	reg.Address = "  "

	_, err := ta.auth.RegisterBusiness(context.Background(), reg)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "all fields are required", serrors.MessageOf(err))
}

func TestAuth_RegisterBusiness_DuplicateEmail(t *testing.T) {
	ta := newTestAuth(t)

	ta.storage.EXPECT().BusinessByCompanyEmail(gomock.Any(), "hr@acme.test").Return(nil, nil)
	ta.cache.EXPECT().ConsumeVerified(gomock.Any(), "hr@acme.test").Return(true, nil)
	ta.storage.EXPECT().CreateBusiness(gomock.Any(), gomock.Any()).Return(nil,
		&storage.DuplicateError{Field: storage.FieldCompanyEmail, Err: errors.New("unique violation")})

	_, err := ta.auth.RegisterBusiness(context.Background(), testRegistration())
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestAuth_RegisterBusiness_FailureKeepsVerification(t *testing.T) {
	ta := newTestAuth(t)

	ta.storage.EXPECT().BusinessByCompanyEmail(gomock.Any(), "hr@acme.test").Return(nil, nil)
	ta.cache.EXPECT().ConsumeVerified(gomock.Any(), "hr@acme.test").Return(true, nil)
	ta.storage.EXPECT().CreateBusiness(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
	ta.cache.EXPECT().MarkVerified(gomock.Any(), "hr@acme.test", 30*time.Minute).Return(nil)

	_, err := ta.auth.RegisterBusiness(context.Background(), testRegistration())
	require.Error(t, err)
	require.NotErrorIs(t, err, serrors.ErrForbidden)
}

func TestAuth_RegisterBusiness_BIDsExhausted(t *testing.T) {
	ta := newTestAuth(t)

	ta.storage.EXPECT().BusinessByCompanyEmail(gomock.Any(), "hr@acme.test").Return(nil, nil)
	ta.cache.EXPECT().ConsumeVerified(gomock.Any(), "hr@acme.test").Return(true, nil)
	ta.storage.EXPECT().CreateBusiness(gomock.Any(), gomock.Any()).Return(nil,
		&storage.DuplicateError{Field: storage.FieldBID, Err: errors.New("unique violation")}).Times(5)
	ta.cache.EXPECT().MarkVerified(gomock.Any(), "hr@acme.test", 30*time.Minute).Return(nil)

	_, err := ta.auth.RegisterBusiness(context.Background(), testRegistration())
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.Equal(t, "could not allocate a unique business id", serrors.MessageOf(err))
}

func TestAuth_LoginBusiness(t *testing.T) {
	ta := newTestAuth(t)
	business := &domain.Business{
		ID:           domain.BusinessID(uuid.New()),
		BID:          "B12345678",
		CompanyEmail: "hr@acme.test",
		PasswordHash: mustHash(t, "s3cretpass"),
	}

	ta.storage.EXPECT().BusinessByCompanyEmail(gomock.Any(), "hr@acme.test").Return(business, nil).Times(2)

	session, err := ta.auth.LoginBusiness(context.Background(), "hr@acme.test", "s3cretpass")
	require.NoError(t, err)
	require.Equal(t, domain.RoleBusiness, session.Principal.Role)
	require.Equal(t, "B12345678", session.Principal.BID)

	_, err = ta.auth.LoginBusiness(context.Background(), "hr@acme.test", "wrongpass")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}
