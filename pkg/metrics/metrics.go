// Package metrics holds the Prometheus collectors for business events. HTTP
// request metrics are recorded through OpenTelemetry in pkg/controller and
// exported on the same registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "arbeit"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

//nolint: gochecknoglobals
var (
	// JobsPosted counts job postings created by businesses.
	JobsPosted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_posted_total",
		Help:      "Number of job postings created.",
	})
	// ApplicationsSubmitted counts applications, labelled by whether a résumé
	// was attached.
	ApplicationsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Number of job applications submitted.",
	}, []string{"resume"})
	// EmailsSent counts delivery attempts made by the e-mail worker.
	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_sent_total",
		Help:      "Number of e-mail delivery attempts by result.",
	}, []string{"result"})
	// RateLimited counts requests rejected by a rate limit scope.
	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_requests_total",
		Help:      "Number of requests rejected by rate limiting.",
	}, []string{"scope"})
	// AIRequestDuration observes text generation calls per feature.
	AIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ai_request_duration_seconds",
		Help:      "Latency of AI text generation calls.",
		Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 20, 45},
	}, []string{"feature", "result"})
)

// Result maps an error to a result label value.
func Result(err error) string {
	if err != nil {
		return ResultFailure
	}

	return ResultSuccess
}
