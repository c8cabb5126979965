package api_test

import (
	"arbeit/internal/api"
	"arbeit/internal/api/handler/v1handler"
	"arbeit/pkg/logger"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"slices"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T, deps api.Deps, mutate func(*api.Options)) http.Handler {
	t.Helper()

	opts := api.Options{
		MetricsPath:        "/metrics",
		MaxBodyBytes:       1 << 20,
		CorsAllowedOrigins: []string{"http://app.test"},
		Registry:           prometheus.NewRegistry(),
	}
	if mutate != nil {
		mutate(&opts)
	}

	srv, err := api.NewServer(context.Background(), deps, opts)
	require.NoError(t, err)

	return srv.Handler
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func loadSpec(t *testing.T, handler http.Handler) *openapi3.T {
	t.Helper()

	rec := get(t, handler, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))

	doc, err := openapi3.NewLoader().LoadFromData(rec.Body.Bytes())
	require.NoError(t, err)

	return doc
}

func TestServer_SpecIsValid(t *testing.T) {
	handler := newTestServer(t, api.Deps{}, nil)

	doc := loadSpec(t, handler)
	require.NoError(t, doc.Validate(context.Background()))
	require.Equal(t, "/v1", doc.Servers[0].URL)
}

func TestServer_SpecMatchesRoutes(t *testing.T) {
	handler := newTestServer(t, api.Deps{}, nil)
	doc := loadSpec(t, handler)

	var documented []string
	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			documented = append(documented, method+" "+path)
		}
	}

	routes, ok := v1handler.New(v1handler.Deps{}, v1handler.Options{}).Routes(v1handler.RouteOptions{}).(chi.Routes)
	require.True(t, ok)

	var served []string
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if route != "/" {
			route = strings.TrimSuffix(route, "/")
		}
		served = append(served, method+" "+route)

		return nil
	})
	require.NoError(t, err)

	sort.Strings(documented)
	sort.Strings(served)
	require.Equal(t, slices.Compact(served), documented)
}

func TestServer_Health(t *testing.T) {
	handler := newTestServer(t, api.Deps{}, nil)

	rec := get(t, handler, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"service":"arbeit-backend"`)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	rec = get(t, handler, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_Readyz(t *testing.T) {
	deps := api.Deps{Deps: v1handler.Deps{Checks: map[string]func(context.Context) error{
		"postgres": func(context.Context) error { return nil },
	}}}
	handler := newTestServer(t, deps, nil)

	rec := get(t, handler, "/readyz")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok","checks":{"postgres":"ok"}}`, rec.Body.String())
}

func TestServer_RequestTimeout(t *testing.T) {
	deps := api.Deps{Deps: v1handler.Deps{Checks: map[string]func(context.Context) error{
		"slow": func(ctx context.Context) error {
			<-ctx.Done()

			return ctx.Err()
		},
	}}}
	handler := newTestServer(t, deps, func(o *api.Options) { o.RequestTimeout = 50 * time.Millisecond })

	rec := get(t, handler, "/readyz")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), "TIMEOUT")
}

func TestServer_V1NotFound(t *testing.T) {
	handler := newTestServer(t, api.Deps{}, nil)

	rec := get(t, handler, "/v1/unknown")

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"code":"NOT_FOUND","message":"route not found"}`, rec.Body.String())
}

func TestServer_CORSPreflight(t *testing.T) {
	handler := newTestServer(t, api.Deps{}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/v1/jobs", nil)
	req.Header.Set("Origin", "http://app.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "http://app.test", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestServer_BodyLimit(t *testing.T) {
	handler := newTestServer(t, api.Deps{}, func(o *api.Options) { o.MaxBodyBytes = 16 })

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
		strings.NewReader(`{"username":"alice","password":"secret123"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_Metrics(t *testing.T) {
	handler := newTestServer(t, api.Deps{}, nil)

	require.Equal(t, http.StatusOK, get(t, handler, "/healthz").Code)

	rec := get(t, handler, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "http_server_requests")
	require.Contains(t, string(body), `http_route="/healthz"`)
}

func TestServer_Docs(t *testing.T) {
	handler := newTestServer(t, api.Deps{}, nil)

	rec := get(t, handler, "/v1/docs/")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Arbeit API")
}

func TestServer_DebugRoutes(t *testing.T) {
	handler := newTestServer(t, api.Deps{}, nil)
	require.Equal(t, http.StatusNotFound, get(t, handler, "/debug/pprof/").Code)

	handler = newTestServer(t, api.Deps{}, func(o *api.Options) { o.EnableDebug = true })
	rec := get(t, handler, "/debug/pprof/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "goroutine")
}
