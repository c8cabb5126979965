package metrics_test

import (
	"arbeit/pkg/metrics"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	require.Equal(t, metrics.ResultSuccess, metrics.Result(nil))
	require.Equal(t, metrics.ResultFailure, metrics.Result(errors.New("boom")))
}

func TestCollectors(t *testing.T) {
	before := testutil.ToFloat64(metrics.RateLimited.WithLabelValues("test"))
	metrics.RateLimited.WithLabelValues("test").Inc()
	require.InDelta(t, before+1, testutil.ToFloat64(metrics.RateLimited.WithLabelValues("test")), 0.0001)

	before = testutil.ToFloat64(metrics.JobsPosted)
	metrics.JobsPosted.Inc()
	require.InDelta(t, before+1, testutil.ToFloat64(metrics.JobsPosted), 0.0001)
}
