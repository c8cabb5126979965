package v1handler

import (
	"arbeit/pkg/domain"
	"arbeit/pkg/logger"
	"arbeit/pkg/serrors"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

type credentialsRequest struct {
	// Username and Email are interchangeable; the web client sends email.
	Username string `json:"username" validate:"required_without=Email"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

func (c credentialsRequest) login() string {
	if c.Username != "" {
		return c.Username
	}

	return c.Email
}

type principalResponse struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
	BID      string      `json:"bid,omitempty"`
}

func newPrincipalResponse(p domain.Principal) principalResponse {
	return principalResponse{
		ID:       p.ID.String(),
		Username: p.Username,
		Email:    p.Username,
		Role:     p.Role,
		BID:      p.BID,
	}
}

type sessionResponse struct {
	Message string            `json:"message"`
	User    principalResponse `json:"user"`
	// flattened copies kept for clients that read them at the top level
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	UserID string      `json:"userId,omitempty"`
	BID    string      `json:"bid,omitempty"`
}

func newSessionResponse(msg string, p domain.Principal) sessionResponse {
	res := sessionResponse{
		Message: msg,
		User:    newPrincipalResponse(p),
		Email:   p.Username,
		Role:    p.Role,
		BID:     p.BID,
	}
	if !p.IsBusiness() {
		res.UserID = p.ID.String()
	}

	return res
}

// Register handles POST /v1/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	user, err := h.deps.Auth.Register(r.Context(), req.login(), req.Password)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{
		Message: "User registered successfully",
		User: principalResponse{
			ID:       user.ID.String(),
			Username: user.Username,
			Email:    user.Username,
			Role:     user.Role,
		},
		Email:  user.Username,
		Role:   user.Role,
		UserID: user.ID.String(),
	})
}

// Login handles POST /v1/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	session, err := h.deps.Auth.Login(r.Context(), req.login(), req.Password)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.setTokenCookies(w, session.Tokens)
	writeJSON(w, http.StatusOK, newSessionResponse("Login successful", session.Principal))
}

// Logout handles POST /v1/auth/logout. It always clears the cookies.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Auth.Logout(r.Context(), accessToken(r), cookieValue(r, RefreshTokenCookie)); err != nil {
		logger.Warn(r.Context(), "could not revoke session tokens", zap.Error(err))
	}

	h.clearTokenCookies(w)
	writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

// Refresh handles GET /v1/auth/refresh by rotating the token pair.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	token := cookieValue(r, RefreshTokenCookie)
	if token == "" {
		h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "refresh token is required"))

		return
	}

	session, err := h.deps.Auth.Refresh(r.Context(), token)
	if err != nil {
		if errors.Is(err, serrors.ErrTokenExpired) || errors.Is(err, serrors.ErrInvalidToken) {
			h.clearTokenCookies(w)
		}
		h.writeError(w, r, err)

		return
	}

	h.setTokenCookies(w, session.Tokens)
	writeJSON(w, http.StatusOK, newSessionResponse("Token refreshed", session.Principal))
}

type checkResponse struct {
	User principalResponse `json:"user"`
}

// Check handles GET /v1/auth/check.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	principal, err := h.principal(r)
	if err != nil {
		h.clearOnTokenError(w, err)
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, checkResponse{User: newPrincipalResponse(*principal)})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// ChangePassword handles POST /v1/auth/change-password.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Auth.ChangePassword(r.Context(), mustPrincipal(r), req.CurrentPassword, req.NewPassword); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Password changed successfully"})
}

// GoogleLogin handles GET /v1/auth/google/login by redirecting to the
// consent page.
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	consentURL, err := h.deps.Auth.GoogleLoginURL(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	http.Redirect(w, r, consentURL, http.StatusFound)
}

// GoogleCallback handles GET /v1/auth/google/callback. The browser is sent
// back to the web client either way; failures carry an error query value.
func (h *Handler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if reason := query.Get("error"); reason != "" {
		logger.Info(r.Context(), "google sign-in declined", zap.String("reason", reason))
		http.Redirect(w, r, h.frontendURL("/auth", "google_signin_cancelled"), http.StatusFound)

		return
	}

	session, err := h.deps.Auth.GoogleCallback(r.Context(), query.Get("state"), query.Get("code"))
	if err != nil {
		res := h.NewError(r.Context(), err)
		logger.Info(r.Context(), "google sign-in failed", zap.String("code", res.Response.Code))
		http.Redirect(w, r, h.frontendURL("/auth", "google_signin_failed"), http.StatusFound)

		return
	}

	h.setTokenCookies(w, session.Tokens)
	http.Redirect(w, r, h.frontendURL("/dashboard", ""), http.StatusFound)
}

func (h *Handler) frontendURL(path, errCode string) string {
	target := strings.TrimRight(h.options.FrontendURL, "/") + path
	if errCode != "" {
		target += "?" + url.Values{"error": {errCode}}.Encode()
	}

	return target
}
