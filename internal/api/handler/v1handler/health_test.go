package v1handler_test

import (
	"arbeit/internal/api/handler/v1handler"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{Version: "1.2.3"})

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	require.Equal(t, "ok", body["status"])
	require.Equal(t, "arbeit-backend", body["service"])
	require.Equal(t, "1.2.3", body["version"])
	require.NotEmpty(t, body["timestamp"])
}

func TestReadyz(t *testing.T) {
	tests := []struct {
		name   string
		checks map[string]func(context.Context) error
		status int
		body   string
	}{
		{
			name:   "no checks",
			status: http.StatusOK,
			body:   `{"status":"ok","checks":{}}`,
		},
		{
			name: "all healthy",
			checks: map[string]func(context.Context) error{
				"postgres": func(context.Context) error { return nil },
				"redis":    func(context.Context) error { return nil },
			},
			status: http.StatusOK,
			body:   `{"status":"ok","checks":{"postgres":"ok","redis":"ok"}}`,
		},
		{
			name: "redis down",
			checks: map[string]func(context.Context) error{
				"postgres": func(context.Context) error { return nil },
				"redis":    func(context.Context) error { return errors.New("connection refused") },
			},
			status: http.StatusServiceUnavailable,
			body:   `{"status":"unavailable","checks":{"postgres":"ok","redis":"fail"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := v1handler.New(v1handler.Deps{Checks: tt.checks}, v1handler.Options{})

			rec := httptest.NewRecorder()
			h.Readyz(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			require.Equal(t, tt.status, rec.Code)
			require.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
