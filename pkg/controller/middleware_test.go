package controller_test

import (
	"arbeit/pkg/cache"
	mockcache "arbeit/pkg/cache/mock"
	"arbeit/pkg/controller"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestWithSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.WithSecurityHeaders(true)(okHandler()).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	h := rec.Result().Header
	require.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
	require.Equal(t, "DENY", h.Get("X-Frame-Options"))
	require.NotEmpty(t, h.Get("Strict-Transport-Security"))

	rec = httptest.NewRecorder()
	controller.WithSecurityHeaders(false)(okHandler()).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Empty(t, rec.Result().Header.Get("Strict-Transport-Security"))
}

func TestWithMaxBodySize(t *testing.T) {
	var readErr error
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 32)
		for readErr == nil {
			_, readErr = r.Body.Read(buf)
		}
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 20)))
	controller.WithMaxBodySize(10)(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Result().StatusCode)
	require.JSONEq(t, `{"code":"PAYLOAD_TOO_LARGE","message":"request body too large"}`, rec.Body.String())

	// streamed body without a declared length is cut at the limit
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 20)))
	req.ContentLength = -1
	controller.WithMaxBodySize(10)(next).ServeHTTP(rec, req)
	var maxErr *http.MaxBytesError
	require.ErrorAs(t, readErr, &maxErr)
}

func TestWithRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mockcache.NewMockRateLimiter(ctrl)
	limit := controller.RateLimit{Scope: "auth", PerMinute: 30, Burst: 10}
	handler := controller.WithRateLimit(limiter, limit)(okHandler())

	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		req.RemoteAddr = "10.1.2.3:5555"

		return req
	}

	limiter.EXPECT().CheckRateLimit(gomock.Any(), "auth", "10.1.2.3", 30, 10).
		Return(&cache.RateLimitResult{Allowed: true, Limit: 10, Remaining: 9}, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newReq())
	require.Equal(t, http.StatusOK, rec.Result().StatusCode)
	require.Equal(t, "9", rec.Result().Header.Get("X-RateLimit-Remaining"))

	limiter.EXPECT().CheckRateLimit(gomock.Any(), "auth", "10.1.2.3", 30, 10).
		Return(&cache.RateLimitResult{Allowed: false, Limit: 10, RetryAfter: 1500 * time.Millisecond}, nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, newReq())
	require.Equal(t, http.StatusTooManyRequests, rec.Result().StatusCode)
	require.Equal(t, "2", rec.Result().Header.Get("Retry-After"))
	require.Contains(t, rec.Body.String(), `"code":"RATE_LIMITED"`)

	limiter.EXPECT().CheckRateLimit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down"))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, newReq())
	require.Equal(t, http.StatusOK, rec.Result().StatusCode)
}

func TestWithRateLimit_RotatedForwardedForSharesBucket(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mockcache.NewMockRateLimiter(ctrl)
	limit := controller.RateLimit{Scope: "otp", PerMinute: 3, Burst: 3}
	handler := controller.WithClientIP(nil)(controller.WithRateLimit(limiter, limit)(okHandler()))

	limiter.EXPECT().CheckRateLimit(gomock.Any(), "otp", "203.0.113.7", 3, 3).
		Return(&cache.RateLimitResult{Allowed: false, Limit: 3, RetryAfter: time.Second}, nil).Times(5)

	for i := range 5 {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/verify-email", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusTooManyRequests, rec.Result().StatusCode)
	}
}

func TestWithRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mockcache.NewMockRateLimiter(ctrl)

	rec := httptest.NewRecorder()
	controller.WithRateLimit(limiter, controller.RateLimit{Scope: "ai"})(okHandler()).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Result().StatusCode)
}

func TestWithMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	mw, err := controller.WithMetrics(mp.Meter("test"))
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(mw)
	r.Get("/v1/jobs/{jobId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/jobs/123", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	routes := map[string]int64{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name != "http.server.requests" {
			continue
		}
		sum, ok := m.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		for _, dp := range sum.DataPoints {
			route, _ := dp.Attributes.Value(attribute.Key("http.route"))
			routes[route.AsString()] += dp.Value
		}
	}
	require.Equal(t, int64(1), routes["/v1/jobs/{jobId}"])
	require.Equal(t, int64(1), routes["unmatched"])
}
