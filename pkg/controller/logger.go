package controller

import (
	"arbeit/pkg/logger"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-Id"

type requestIDKey struct{}

// RequestID returns the id WithLogger assigned to the request, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

// wrap returns a writer that remembers the status and body size.
func wrap(w http.ResponseWriter, r *http.Request) middleware.WrapResponseWriter {
	if ww, ok := w.(middleware.WrapResponseWriter); ok {
		return ww
	}

	return middleware.NewWrapResponseWriter(w, r.ProtoMajor)
}

// statusOf reports the status written to ww. Handlers that never write
// anything implicitly answered 200.
func statusOf(ww middleware.WrapResponseWriter) int {
	if status := ww.Status(); status != 0 {
		return status
	}

	return http.StatusOK
}

// routeOf returns the chi pattern that matched r, or fallback.
func routeOf(r *http.Request, fallback string) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}

	return fallback
}

// WithLogger assigns a request id (taken from X-Request-Id when the client
// sent one), stores a logger carrying it in the request context and writes
// one access log line per request.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		ctx = logger.WithFields(ctx, zap.String("requestId", requestID))
		r = r.WithContext(ctx)

		start := time.Now()
		ww := wrap(w, r)
		next.ServeHTTP(ww, r)

		logger.Info(ctx, "Access log",
			zap.String("method", r.Method),
			zap.String("url", r.URL.String()),
			zap.String("route", routeOf(r, "")),
			zap.Int("status_code", statusOf(ww)),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Float64("latency", time.Since(start).Seconds()),
			zap.String("client_ip", ClientIP(r)),
			zap.String("user_agent", r.UserAgent()),
			zap.String("referer", r.Referer()),
		)
	})
}
