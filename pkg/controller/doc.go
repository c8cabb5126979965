// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Echoes allowed origins with credentials and handles OPTIONS preflight.
//   - WithClientIP: Resolves the client address, honoring forwarding headers only from trusted proxies.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithSecurityHeaders: Sets browser hardening headers.
//   - WithMaxBodySize: Caps request body size.
//   - WithRateLimit: Applies a per client IP token bucket.
//   - WithMetrics: Records request count and latency through OpenTelemetry.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
