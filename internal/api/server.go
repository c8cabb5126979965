// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the job board.
package api

import (
	"arbeit/internal/api/handler/v1handler"
	"arbeit/internal/config"
	"arbeit/pkg/controller"
	"arbeit/pkg/logger"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap/exp/zapslog"
	"riverqueue.com/riverui"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const (
	apiPrefix     = "/v1"
	riverUIPrefix = "/riverui"
	meterName     = "arbeit/internal/api"
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// Zero durations fall back to the net/http defaults.
type Options struct {
	Handler v1handler.Options
	Routes  v1handler.RouteOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MaxBodyBytes limits request bodies. Zero disables the limit.
	MaxBodyBytes int64
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// CorsAllowedOrigins may call the API with credentials.
	CorsAllowedOrigins []string
	// TrustedProxies may set the client address through forwarding headers.
	TrustedProxies []string
	// HSTS adds Strict-Transport-Security to every response.
	HSTS bool
	// EnableDebug mounts pprof and the queue UI.
	EnableDebug bool

	// Registry collects the OpenTelemetry and Prometheus metrics. Nil means
	// the Prometheus default registry.
	Registry *prometheus.Registry
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Handler: v1handler.NewOptions(cfg),
		Routes:  v1handler.NewRouteOptions(cfg),

		Addr:               cfg.HTTP.Addr,
		ReadTimeout:        cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout:  cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:       cfg.HTTP.WriteTimeout,
		IdleTimeout:        cfg.HTTP.IdleTimeout,
		RequestTimeout:     cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:     cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:       cfg.HTTP.MaxBodyBytes,
		MetricsPath:        cfg.HTTP.MetricsPath,
		CorsAllowedOrigins: cfg.HTTP.CorsAllowedOrigins,
		TrustedProxies:     cfg.HTTP.TrustedProxies,
		HSTS:               cfg.IsProduction(),
		EnableDebug:        cfg.HTTP.EnableDebug,
	}
}

type Deps struct {
	v1handler.Deps

	// River is optional. The queue UI is only mounted when it is set.
	River *river.Client[pgx.Tx]
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath) and OpenTelemetry request metrics
// - health, liveness and readiness probes
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes under /v1
// - pprof and the River queue UI when debugging is enabled
// Every request goes through recovery, client address resolution, logging,
// security headers, CORS and the body size limit, and is bounded by
// RequestTimeout.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	registerer := prometheus.DefaultRegisterer
	gatherer := prometheus.DefaultGatherer
	if opts.Registry != nil {
		registerer, gatherer = opts.Registry, opts.Registry
	}

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	withMetrics, err := controller.WithMetrics(mp.Meter(meterName))
	if err != nil {
		return nil, fmt.Errorf("could not create http metrics: %w", err)
	}

	proxies, err := controller.ParseTrustedProxies(opts.TrustedProxies)
	if err != nil {
		return nil, err
	}

	h := v1handler.New(deps.Deps, opts.Handler)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		controller.WithClientIP(proxies),
		controller.WithLogger,
		controller.WithSecurityHeaders(opts.HSTS),
		controller.WithCORS(opts.CorsAllowedOrigins),
		withMetrics,
	)
	if opts.MaxBodyBytes > 0 {
		r.Use(controller.WithMaxBodySize(opts.MaxBodyBytes))
	}

	r.Get("/health", h.Health)
	r.Get("/healthz", h.Healthz)
	r.Get("/readyz", h.Readyz)

	// prometheus metrics server
	if opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Handle(apiPrefix+"/docs/*", v5emb.New(
		"Arbeit API",
		"/specs/v1.yaml",
		apiPrefix+"/docs/",
	))
	// v1 api
	r.Mount(apiPrefix, h.Routes(opts.Routes))

	if opts.EnableDebug {
		r.Mount(controller.PprofPrefix, controller.Pprof())

		if deps.River != nil {
			queueUI, err := newRiverUI(ctx, deps.River)
			if err != nil {
				return nil, err
			}
			r.Handle(riverUIPrefix, queueUI)
			r.Handle(riverUIPrefix+"/*", queueUI)
		}
	}

	var handler http.Handler = r
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(r, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

// newRiverUI serves the queue dashboard for client. It runs until ctx is done.
func newRiverUI(ctx context.Context, client *river.Client[pgx.Tx]) (http.Handler, error) {
	queueUI, err := riverui.NewHandler(&riverui.HandlerOpts{
		Endpoints: riverui.NewEndpoints(client, nil),
		Logger:    slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
		Prefix:    riverUIPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river ui: %w", err)
	}

	if err := queueUI.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river ui: %w", err)
	}

	return queueUI, nil
}
