package v1handler_test

import (
	"arbeit/internal/api/handler/v1handler"
	"arbeit/pkg/domain"
	"arbeit/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sessionBody struct {
	Message string `json:"message"`
	User    struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Role     string `json:"role"`
		BID      string `json:"bid"`
	} `json:"user"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	UserID string `json:"userId"`
	BID    string `json:"bid"`
}

func requireSessionCookies(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	access := responseCookie(rec, v1handler.AccessTokenCookie)
	require.NotNil(t, access)
	require.Equal(t, "new-access", access.Value)
	require.Equal(t, 15, access.MaxAge)
	require.True(t, access.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, access.SameSite)

	refresh := responseCookie(rec, v1handler.RefreshTokenCookie)
	require.NotNil(t, refresh)
	require.Equal(t, "new-refresh", refresh.Value)
	require.Equal(t, 45, refresh.MaxAge)
}

func TestRegister(t *testing.T) {
	api := newTestAPI(t)
	user := &domain.User{ID: domain.UserID(uuid.New()), Username: "alice@example.com", Role: domain.RoleUser}
	api.auth.EXPECT().Register(gomock.Any(), "alice@example.com", "secret123").Return(user, nil)

	rec := api.do(t, http.MethodPost, "/auth/register", "", `{"email":"alice@example.com","password":"secret123"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody[sessionBody](t, rec)
	require.Equal(t, "User registered successfully", body.Message)
	require.Equal(t, "alice@example.com", body.User.Username)
	require.Equal(t, "user", body.Role)
	require.Equal(t, user.ID.String(), body.UserID)
}

func TestRegister_Conflict(t *testing.T) {
	api := newTestAPI(t)
	api.auth.EXPECT().Register(gomock.Any(), "alice", "secret123").
		Return(nil, serrors.With(serrors.ErrConflict, "username already exists"))

	rec := api.do(t, http.MethodPost, "/auth/register", "", `{"username":"alice","password":"secret123"}`)

	requireError(t, rec, http.StatusConflict, "CONFLICT", "username already exists")
}

func TestLogin_SetsCookies(t *testing.T) {
	api := newTestAPI(t)
	principal := userPrincipal()
	api.auth.EXPECT().Login(gomock.Any(), "alice@example.com", "secret123").Return(testSession(principal), nil)

	rec := api.do(t, http.MethodPost, "/auth/login", "", `{"username":"alice@example.com","password":"secret123"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	requireSessionCookies(t, rec)
	body := decodeBody[sessionBody](t, rec)
	require.Equal(t, "Login successful", body.Message)
	require.Equal(t, principal.ID.String(), body.User.ID)
	require.Equal(t, principal.ID.String(), body.UserID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	api := newTestAPI(t)
	api.auth.EXPECT().Login(gomock.Any(), "alice", "wrong").
		Return(nil, serrors.With(serrors.ErrUnauthorized, "invalid credentials"))

	rec := api.do(t, http.MethodPost, "/auth/login", "", `{"username":"alice","password":"wrong"}`)

	requireError(t, rec, http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials")
	require.Nil(t, responseCookie(rec, v1handler.AccessTokenCookie))
}

func TestLogout_AlwaysClearsCookies(t *testing.T) {
	api := newTestAPI(t)
	api.auth.EXPECT().Logout(gomock.Any(), "old-access", "old-refresh").Return(serrors.KindOnly(serrors.ErrUnavailable))

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: v1handler.AccessTokenCookie, Value: "old-access"})
	req.AddCookie(&http.Cookie{Name: v1handler.RefreshTokenCookie, Value: "old-refresh"})
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, -1, responseCookie(rec, v1handler.AccessTokenCookie).MaxAge)
	require.Equal(t, -1, responseCookie(rec, v1handler.RefreshTokenCookie).MaxAge)
	require.JSONEq(t, `{"message":"Logged out successfully"}`, rec.Body.String())
}

func TestRefresh(t *testing.T) {
	api := newTestAPI(t)
	principal := businessPrincipal()
	api.auth.EXPECT().Refresh(gomock.Any(), "old-refresh").Return(testSession(principal), nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: v1handler.RefreshTokenCookie, Value: "old-refresh"})
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	requireSessionCookies(t, rec)
	body := decodeBody[sessionBody](t, rec)
	require.Equal(t, "Token refreshed", body.Message)
	require.Equal(t, "B12345678", body.BID)
	require.Empty(t, body.UserID)
}

func TestRefresh_MissingCookie(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/auth/refresh", "", "")

	requireError(t, rec, http.StatusUnauthorized, "UNAUTHORIZED", "refresh token is required")
}

func TestRefresh_RevokedClearsCookies(t *testing.T) {
	api := newTestAPI(t)
	api.auth.EXPECT().Refresh(gomock.Any(), "revoked").Return(nil, serrors.With(serrors.ErrInvalidToken, "refresh token revoked"))

	req := httptest.NewRequest(http.MethodGet, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: v1handler.RefreshTokenCookie, Value: "revoked"})
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	requireError(t, rec, http.StatusUnauthorized, "INVALID_TOKEN", "refresh token revoked")
	require.Equal(t, -1, responseCookie(rec, v1handler.AccessTokenCookie).MaxAge)
	require.Equal(t, -1, responseCookie(rec, v1handler.RefreshTokenCookie).MaxAge)
}

func TestCheck(t *testing.T) {
	api := newTestAPI(t)
	principal := businessPrincipal()
	api.signedIn(businessToken, principal)

	rec := api.do(t, http.MethodGet, "/auth/check", businessToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[struct {
		User struct {
			Username string `json:"username"`
			Role     string `json:"role"`
			BID      string `json:"bid"`
		} `json:"user"`
	}](t, rec)
	require.Equal(t, principal.Username, body.User.Username)
	require.Equal(t, "business", body.User.Role)
	require.Equal(t, principal.BID, body.User.BID)
}

func TestChangePassword(t *testing.T) {
	api := newTestAPI(t)
	principal := userPrincipal()
	api.signedIn(userToken, principal)
	api.auth.EXPECT().ChangePassword(gomock.Any(), principal, "old-secret", "new-secret").Return(nil)

	rec := api.do(t, http.MethodPost, "/auth/change-password", userToken,
		`{"currentPassword":"old-secret","newPassword":"new-secret"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.JSONEq(t, `{"message":"Password changed successfully"}`, rec.Body.String())
}

func TestChangePassword_RequiresSignIn(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/auth/change-password", "",
		`{"currentPassword":"old-secret","newPassword":"new-secret"}`)

	requireError(t, rec, http.StatusUnauthorized, "UNAUTHORIZED", "")
}

func TestGoogleLogin_Redirects(t *testing.T) {
	api := newTestAPI(t)
	api.auth.EXPECT().GoogleLoginURL(gomock.Any()).Return("https://accounts.google.test/o/oauth2/auth?state=abc", nil)

	rec := api.do(t, http.MethodGet, "/auth/google/login", "", "")

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "https://accounts.google.test/o/oauth2/auth?state=abc", rec.Header().Get("Location"))
}

func TestGoogleCallback(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		setup    func(api *testAPI)
		location string
		cookies  bool
	}{
		{
			name:     "cancelled",
			query:    "?error=access_denied",
			setup:    func(*testAPI) {},
			location: "http://app.test/auth?error=google_signin_cancelled",
		},
		{
			name:  "failed",
			query: "?state=abc&code=bad",
			setup: func(api *testAPI) {
				api.auth.EXPECT().GoogleCallback(gomock.Any(), "abc", "bad").
					Return(nil, serrors.With(serrors.ErrUnauthorized, "invalid oauth state"))
			},
			location: "http://app.test/auth?error=google_signin_failed",
		},
		{
			name:  "signed in",
			query: "?state=abc&code=good",
			setup: func(api *testAPI) {
				api.auth.EXPECT().GoogleCallback(gomock.Any(), "abc", "good").Return(testSession(userPrincipal()), nil)
			},
			location: "http://app.test/dashboard",
			cookies:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			tt.setup(api)

			rec := api.do(t, http.MethodGet, "/auth/google/callback"+tt.query, "", "")

			require.Equal(t, http.StatusFound, rec.Code)
			require.Equal(t, tt.location, rec.Header().Get("Location"))
			if tt.cookies {
				requireSessionCookies(t, rec)
			} else {
				require.Nil(t, responseCookie(rec, v1handler.AccessTokenCookie))
			}
		})
	}
}

