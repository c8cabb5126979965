package v1handler

import (
	"arbeit/internal/auth"
	"arbeit/internal/config"
	"net/http"
	"time"
)

// Cookie names shared with the web client.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// CookieOptions control the attributes of the token cookies.
type CookieOptions struct {
	// Secure marks cookies HTTPS only.
	Secure bool
	// Domain is left empty for host-only cookies.
	Domain string
}

// NewCookieOptions enables Secure in production or when forced by config.
func NewCookieOptions(cfg *config.Config) CookieOptions {
	return CookieOptions{Secure: cfg.JWT.SecureCookies || cfg.IsProduction()}
}

func (o CookieOptions) cookie(name, value string, ttl time.Duration) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   o.Domain,
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	}
	if ttl <= 0 {
		c.Value = ""
		c.MaxAge = -1
		c.Expires = time.Unix(0, 0)
	}

	return c
}

func (h *Handler) setTokenCookies(w http.ResponseWriter, tokens auth.TokenPair) {
	http.SetCookie(w, h.options.Cookies.cookie(AccessTokenCookie, tokens.AccessToken, tokens.AccessTTL))
	http.SetCookie(w, h.options.Cookies.cookie(RefreshTokenCookie, tokens.RefreshToken, tokens.RefreshTTL))
}

func (h *Handler) clearAccessCookie(w http.ResponseWriter) {
	http.SetCookie(w, h.options.Cookies.cookie(AccessTokenCookie, "", 0))
}

func (h *Handler) clearTokenCookies(w http.ResponseWriter) {
	h.clearAccessCookie(w)
	http.SetCookie(w, h.options.Cookies.cookie(RefreshTokenCookie, "", 0))
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}

	return c.Value
}
