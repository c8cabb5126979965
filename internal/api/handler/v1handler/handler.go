// Package v1handler implements the /v1 HTTP API on top of the domain
// services.
package v1handler

import (
	"arbeit/internal/application"
	"arbeit/internal/auth"
	"arbeit/internal/config"
	"arbeit/internal/mentor"
	"arbeit/internal/posting"
	"arbeit/internal/profile"
	"arbeit/internal/scanner"
	"arbeit/pkg/cache"
	"arbeit/pkg/logger"
	"arbeit/pkg/serrors"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Deps are the services the handlers delegate to.
type Deps struct {
	Auth         auth.Authenticator
	Jobs         posting.Jobs
	Applications application.Applications
	Profiles     profile.Profiles
	Analyzer     scanner.Analyzer
	Mentor       mentor.Mentor
	// Limiter backs the per-client rate limits. It may be nil.
	Limiter cache.RateLimiter
	// Checks are run by the readiness probe, keyed by component name.
	Checks map[string]func(ctx context.Context) error
}

// Options configure response details that depend on the deployment.
type Options struct {
	Cookies CookieOptions
	// FrontendURL is where the browser is sent after Google sign-in.
	FrontendURL string
	// MaxResumeBytes bounds multipart résumé uploads.
	MaxResumeBytes int64
	// Version is reported by the health endpoint.
	Version string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Cookies:        NewCookieOptions(cfg),
		FrontendURL:    cfg.HTTP.FrontendURL,
		MaxResumeBytes: cfg.Applications.MaxResumeBytes,
		Version:        cfg.Version,
	}
}

type Handler struct {
	deps    Deps
	options Options
	now     func() time.Time
}

func New(deps Deps, options Options) *Handler {
	return &Handler{deps: deps, options: options, now: time.Now}
}

// Error is the JSON document returned for every failed request.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse pairs an Error with its HTTP status.
type ErrorResponse struct {
	StatusCode int
	Response   Error
}

type kindInfo struct {
	status  int
	message string
}

//nolint: gochecknoglobals
var kinds = map[serrors.Kind]kindInfo{
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:    {http.StatusForbidden, "forbidden"},
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrInternal:     {http.StatusInternalServerError, "internal error"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrTokenExpired: {http.StatusUnauthorized, "token expired"},
	serrors.ErrInvalidToken: {http.StatusUnauthorized, "invalid token"},
}

// NewError maps err to a status code and a client safe message. Internal
// errors are logged and their text is never returned.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	info, ok := kinds[kind]
	if !ok {
		kind, info = serrors.ErrInternal, kinds[serrors.ErrInternal]
	}

	message := serrors.MessageOf(err)
	if kind == serrors.ErrInternal {
		logger.Error(ctx, "internal error", zap.Error(err))
		message = ""
	} else if info.status >= http.StatusInternalServerError {
		logger.Warn(ctx, "request failed", zap.Error(err))
	}
	if message == "" {
		message = info.message
	}

	return &ErrorResponse{
		StatusCode: info.status,
		Response:   Error{Code: kind.Error(), Message: message},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, res.Response)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// orEmpty makes nil slices encode as [] rather than null.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}

//nolint: gochecknoglobals
var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// decode reads a JSON body into dst and runs its validate tags.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return serrors.Wrap(serrors.ErrBadRequest, err, "request body too large")
		case errors.Is(err, io.EOF):
			return serrors.With(serrors.ErrBadRequest, "request body is required")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	if err := validate.Struct(dst); err != nil {
		return validationError(err)
	}

	return nil
}

func validationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request")
	}

	fe := errs[0]
	switch fe.Tag() {
	case "required", "required_without":
		return serrors.With(serrors.ErrBadRequest, "%s is required", fe.Field())
	case "email":
		return serrors.With(serrors.ErrBadRequest, "%s must be a valid email", fe.Field())
	case "min":
		return serrors.With(serrors.ErrBadRequest, "%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return serrors.With(serrors.ErrBadRequest, "%s must be at most %s characters", fe.Field(), fe.Param())
	}

	return serrors.With(serrors.ErrBadRequest, "%s is invalid", fe.Field())
}

type messageResponse struct {
	Message string `json:"message"`
}
