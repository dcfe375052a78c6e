package metric_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/profile-client/pkg/metric"
)

func TestPrometheusMetrics_Increment_CountsPerLabelSet(t *testing.T) {
	metrics := metric.NewPrometheus("test")

	metrics.WithLabel("type", "GET_PROFILE").Increment("actions_total")
	metrics.WithLabel("type", "GET_PROFILE").Increment("actions_total")
	metrics.WithLabel("type", "CLEAR_PROFILE").Increment("actions_total")

	count, err := testutil.GatherAndCount(metrics.Gatherer(), "test_actions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPrometheusMetrics_Increment_DropsMismatchedLabels(t *testing.T) {
	metrics := metric.NewPrometheus("test")

	metrics.WithLabel("type", "GET_PROFILE").Increment("actions_total")
	assert.NotPanics(t, func() {
		metrics.With(metric.Labels{"type": "GET_PROFILE", "extra": "x"}).Increment("actions_total")
	})

	count, err := testutil.GatherAndCount(metrics.Gatherer(), "test_actions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPrometheusMetrics_Duration_ObservesHistogram(t *testing.T) {
	metrics := metric.NewPrometheus("test")

	metrics.With(metric.Labels{"method": "GET", "code": "200"}).Duration("request_duration_seconds", 150*time.Millisecond)

	count, err := testutil.GatherAndCount(metrics.Gatherer(), "test_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPrometheusMetrics_WriteTextfile(t *testing.T) {
	metrics := metric.NewPrometheus("test")
	metrics.WithLabel("type", "GET_PROFILE").Increment("actions_total")

	path := filepath.Join(t.TempDir(), "profilectl.prom")
	require.NoError(t, metrics.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `test_actions_total{type="GET_PROFILE"} 1`)
}
