package metrics_server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog-platform/internal/infrastructure/logger"
	"blog-platform/internal/infrastructure/outbound/metrics/prometheus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServer_ExposesCollectors(t *testing.T) {
	metrics := prometheus.NewPrometheusMetricsProvider()
	metrics.IncrementPostOperations("create", true)
	metrics.SetServiceHealth(true)

	server := NewMetricsServer("127.0.0.1", 0, logger.New("test"))
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "post_operations_total")
	assert.Contains(t, string(body), "service_health 1")
}
