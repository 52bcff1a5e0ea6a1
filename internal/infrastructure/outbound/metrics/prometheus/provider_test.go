package prometheus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetricsProvider_Counters(t *testing.T) {
	p := NewPrometheusMetricsProvider()

	before := testutil.ToFloat64(PostOperationsTotal.WithLabelValues("create", "true"))
	p.IncrementPostOperations("create", true)
	assert.Equal(t, before+1, testutil.ToFloat64(PostOperationsTotal.WithLabelValues("create", "true")))

	beforeAuth := testutil.ToFloat64(AuthAttemptsTotal.WithLabelValues("false"))
	p.IncrementAuthAttempts(false)
	assert.Equal(t, beforeAuth+1, testutil.ToFloat64(AuthAttemptsTotal.WithLabelValues("false")))

	beforeHTTP := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/posts", "200"))
	p.IncrementHTTPRequests("GET", "/posts", "200")
	p.RecordHTTPRequestDuration("GET", "/posts", "200", 10*time.Millisecond)
	assert.Equal(t, beforeHTTP+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/posts", "200")))
}

func TestPrometheusMetricsProvider_ServiceHealth(t *testing.T) {
	p := NewPrometheusMetricsProvider()

	p.SetServiceHealth(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(ServiceHealth))

	p.SetServiceHealth(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(ServiceHealth))
}
