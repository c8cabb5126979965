package controller

import (
	"arbeit/pkg/cache"
	"arbeit/pkg/logger"
	"arbeit/pkg/metrics"
	"math"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// RateLimit describes one token bucket scope.
type RateLimit struct {
	// Scope separates buckets of different route groups, e.g. "auth".
	Scope string
	// PerMinute is the refill rate. Zero disables the limit.
	PerMinute int
	// Burst is the bucket capacity.
	Burst int
}

// WithRateLimit returns a middleware that takes one token per request from the
// bucket of the client IP within limit.Scope. Rejected requests get 429 with
// Retry-After. Limiter errors let the request through.
func WithRateLimit(limiter cache.RateLimiter, limit RateLimit) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil || limit.PerMinute <= 0 {
				next.ServeHTTP(w, r)

				return
			}

			ctx := r.Context()
			ip := ClientIP(r)
			res, err := limiter.CheckRateLimit(ctx, limit.Scope, ip, limit.PerMinute, limit.Burst)
			if err != nil {
				logger.Warn(ctx, "rate limit check failed", zap.String("scope", limit.Scope), zap.Error(err))
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))

			if !res.Allowed {
				retryAfter := int(math.Max(1, math.Ceil(res.RetryAfter.Seconds())))
				metrics.RateLimited.WithLabelValues(limit.Scope).Inc()
				logger.Warn(ctx, "rate limit exceeded",
					zap.String("scope", limit.Scope),
					zap.String("client_ip", ip),
					zap.Int("retry_after", retryAfter))

				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests, please try again later")

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
