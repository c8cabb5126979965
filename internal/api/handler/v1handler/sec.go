package v1handler

import (
	"arbeit/pkg/domain"
	"arbeit/pkg/logger"
	"arbeit/pkg/serrors"
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"go.uber.org/zap"
)

type ctxKey string

// PrincipalKey is the context key under which the authenticated principal is stored.
const PrincipalKey ctxKey = "principal"

// WithPrincipal returns a copy of ctx carrying principal.
func WithPrincipal(ctx context.Context, principal domain.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, principal)
}

// PrincipalFrom returns the principal stored by Authenticate.
func PrincipalFrom(ctx context.Context) (domain.Principal, bool) {
	principal, ok := ctx.Value(PrincipalKey).(domain.Principal)

	return principal, ok
}

// accessToken reads the access token from the cookie, falling back to a
// Bearer Authorization header for non-browser clients.
func accessToken(r *http.Request) string {
	if token := cookieValue(r, AccessTokenCookie); token != "" {
		return token
	}

	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}

	return ""
}

// Authenticate returns a middleware that rejects requests without a valid
// access token. When roles are given the principal must hold one of them.
// Expired tokens clear the access cookie so the client refreshes; any
// other token failure clears both cookies.
func (h *Handler) Authenticate(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := h.principal(r)
			if err != nil {
				h.clearOnTokenError(w, err)
				h.writeError(w, r, err)

				return
			}

			if len(roles) > 0 && !slices.Contains(roles, principal.Role) {
				h.writeError(w, r, serrors.With(serrors.ErrForbidden, "this action requires a %s account", roles[0]))

				return
			}

			ctx := logger.WithFields(r.Context(),
				zap.Stringer("principalID", principal.ID),
				zap.String("role", string(principal.Role)))
			next.ServeHTTP(w, r.WithContext(WithPrincipal(ctx, *principal)))
		})
	}
}

func (h *Handler) principal(r *http.Request) (*domain.Principal, error) {
	token := accessToken(r)
	if token == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "authentication required")
	}

	principal, err := h.deps.Auth.Check(r.Context(), token)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return principal, nil
}

func (h *Handler) clearOnTokenError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, serrors.ErrTokenExpired):
		h.clearAccessCookie(w)
	case errors.Is(err, serrors.ErrInvalidToken):
		h.clearTokenCookies(w)
	}
}

// mustPrincipal is used by handlers mounted behind Authenticate.
func mustPrincipal(r *http.Request) domain.Principal {
	principal, _ := PrincipalFrom(r.Context())

	return principal
}
