package v1handler_test

import (
	"arbeit/internal/api/handler/v1handler"
	"arbeit/pkg/domain"
	"arbeit/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}

	return nil
}

func protected(api *testAPI, roles ...domain.Role) http.Handler {
	return api.handler.Authenticate(roles...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := v1handler.PrincipalFrom(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}
		_, _ = w.Write([]byte(principal.Username))
	}))
}

func TestAuthenticate_Cookie(t *testing.T) {
	api := newTestAPI(t)
	principal := userPrincipal()
	api.signedIn(userToken, principal)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: v1handler.AccessTokenCookie, Value: userToken})
	rec := httptest.NewRecorder()
	protected(api).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, principal.Username, rec.Body.String())
}

func TestAuthenticate_BearerHeader(t *testing.T) {
	api := newTestAPI(t)
	principal := businessPrincipal()
	api.signedIn(businessToken, principal)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+businessToken)
	rec := httptest.NewRecorder()
	protected(api, domain.RoleBusiness).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, principal.Username, rec.Body.String())
}

func TestAuthenticate_MissingToken(t *testing.T) {
	api := newTestAPI(t)

	rec := httptest.NewRecorder()
	protected(api).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	requireError(t, rec, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
	require.Nil(t, responseCookie(rec, v1handler.AccessTokenCookie))
}

func TestAuthenticate_ExpiredClearsAccessCookie(t *testing.T) {
	api := newTestAPI(t)
	api.auth.EXPECT().Check(gomock.Any(), "stale").Return(nil, serrors.With(serrors.ErrTokenExpired, "access token expired"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: v1handler.AccessTokenCookie, Value: "stale"})
	rec := httptest.NewRecorder()
	protected(api).ServeHTTP(rec, req)

	requireError(t, rec, http.StatusUnauthorized, "TOKEN_EXPIRED", "access token expired")
	access := responseCookie(rec, v1handler.AccessTokenCookie)
	require.NotNil(t, access)
	require.Equal(t, -1, access.MaxAge)
	require.Nil(t, responseCookie(rec, v1handler.RefreshTokenCookie))
}

func TestAuthenticate_InvalidClearsBothCookies(t *testing.T) {
	api := newTestAPI(t)
	api.auth.EXPECT().Check(gomock.Any(), "forged").Return(nil, serrors.KindOnly(serrors.ErrInvalidToken))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: v1handler.AccessTokenCookie, Value: "forged"})
	rec := httptest.NewRecorder()
	protected(api).ServeHTTP(rec, req)

	requireError(t, rec, http.StatusUnauthorized, "INVALID_TOKEN", "invalid token")
	require.NotNil(t, responseCookie(rec, v1handler.AccessTokenCookie))
	require.NotNil(t, responseCookie(rec, v1handler.RefreshTokenCookie))
}

func TestAuthenticate_WrongRole(t *testing.T) {
	api := newTestAPI(t)
	api.signedIn(userToken, userPrincipal())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: v1handler.AccessTokenCookie, Value: userToken})
	rec := httptest.NewRecorder()
	protected(api, domain.RoleBusiness).ServeHTTP(rec, req)

	requireError(t, rec, http.StatusForbidden, "FORBIDDEN", "this action requires a business account")
}
