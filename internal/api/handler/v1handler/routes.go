package v1handler

import (
	"arbeit/internal/config"
	"arbeit/pkg/cache"
	"arbeit/pkg/controller"
	"arbeit/pkg/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RouteOptions configure the rate limits applied to the public route groups.
type RouteOptions struct {
	// RateLimit enables the limits below. Deps.Limiter must be set too.
	RateLimit bool
	Auth      controller.RateLimit
	OTP       controller.RateLimit
	AI        controller.RateLimit
}

// NewRouteOptions constructs RouteOptions from config.
func NewRouteOptions(cfg *config.Config) RouteOptions {
	return RouteOptions{
		RateLimit: cfg.RateLimit.Enabled,
		Auth:      controller.RateLimit{Scope: "auth", PerMinute: cfg.RateLimit.AuthPerMinute, Burst: cfg.RateLimit.AuthBurst},
		OTP:       controller.RateLimit{Scope: "otp", PerMinute: cfg.RateLimit.OTPPerMinute, Burst: cfg.RateLimit.OTPBurst},
		AI:        controller.RateLimit{Scope: "ai", PerMinute: cfg.RateLimit.AIPerMinute, Burst: cfg.RateLimit.AIBurst},
	}
}

// Routes returns the /v1 API. Paths are relative to the mount point.
func (h *Handler) Routes(opts RouteOptions) http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, Error{Code: "NOT_FOUND", Message: "route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, Error{Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"})
	})

	var limiter cache.RateLimiter
	if opts.RateLimit {
		limiter = h.deps.Limiter
	}
	limit := func(l controller.RateLimit) func(http.Handler) http.Handler {
		return controller.WithRateLimit(limiter, l)
	}
	anyone := h.Authenticate()
	candidate := h.Authenticate(domain.RoleUser)
	business := h.Authenticate(domain.RoleBusiness)

	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(limit(opts.Auth))
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			r.Post("/business/register", h.RegisterBusiness)
			r.Post("/business/login", h.LoginBusiness)
			r.Put("/verify-email", h.VerifyCode)
			r.Get("/google/login", h.GoogleLogin)
			r.Get("/google/callback", h.GoogleCallback)
		})
		r.With(limit(opts.OTP)).Post("/verify-email", h.SendVerificationCode)
		r.Post("/logout", h.Logout)
		r.Get("/refresh", h.Refresh)
		r.Get("/check", h.Check)
		r.With(anyone).Post("/change-password", h.ChangePassword)
	})

	r.Get("/jobs", h.ListJobs)
	r.Get("/jobs/{jobId}", h.GetJob)

	r.Route("/business", func(r chi.Router) {
		r.Use(business)
		r.Get("/jobs", h.BusinessJobs)
		r.Post("/jobs", h.CreateJob)
		r.Put("/jobs/{jobId}", h.UpdateJob)
		r.Delete("/jobs/{jobId}", h.DeleteJob)
		r.Patch("/jobs/{jobId}/status", h.ToggleJobStatus)
		r.Get("/jobs/{jobId}/applications", h.JobApplications)
		r.Get("/analytics", h.HiringProgress)
	})

	r.Route("/applications", func(r chi.Router) {
		r.With(candidate).Post("/", h.SubmitApplication)
		r.With(anyone).Get("/", h.ListApplications)
		r.With(business).Put("/", h.UpdateApplicationStatus)
		r.With(anyone).Get("/{applicationId}/resume", h.DownloadResume)
	})

	r.Group(func(r chi.Router) {
		r.Use(limit(opts.AI))
		r.Post("/scanner/analyze", h.AnalyzeResume)
		r.Post("/mentorship/roadmap", h.Roadmap)
		r.Post("/mentorship/project-plan", h.ProjectPlan)
	})

	r.Route("/profile", func(r chi.Router) {
		r.Use(candidate)
		r.Get("/", h.GetProfile)
		r.Put("/", h.UpdateProfile)
	})

	return r
}
