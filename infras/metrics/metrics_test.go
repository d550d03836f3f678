package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hoteladmin/config"
	"hoteladmin/infras/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)

	return string(body)
}

func TestMetricsExposition(t *testing.T) {
	cfg := &config.Config{}
	cfg.Metrics.Namespace = "hotel"

	m := metrics.New(cfg)

	m.ObserveHTTP("/v1/room-types/{id}", http.MethodGet, http.StatusOK, 12*time.Millisecond)
	m.AdjustmentCreated()
	m.AdjustmentCreated()
	m.CascadeDeleted("hotel")
	m.EventPublished("rate_adjustment.created", nil)
	m.EventPublished("hotel.deleted", errors.New("broker down"))

	out := scrape(t, m)

	assert.Contains(t, out, `hotel_http_requests_total{method="GET",route="/v1/room-types/{id}",status="200"} 1`)
	assert.Contains(t, out, "hotel_http_request_duration_seconds_bucket")
	assert.Contains(t, out, "hotel_rate_adjustments_created_total 2")
	assert.Contains(t, out, `hotel_cascade_deletes_total{entity="hotel"} 1`)
	assert.Contains(t, out, `hotel_events_published_total{event="rate_adjustment.created",status="success"} 1`)
	assert.Contains(t, out, `hotel_events_published_total{event="hotel.deleted",status="failure"} 1`)
	assert.Contains(t, out, "go_goroutines")
}

func TestMetricsInstancesAreIndependent(t *testing.T) {
	first := metrics.New(&config.Config{})
	second := metrics.New(&config.Config{})

	first.AdjustmentCreated()

	assert.Contains(t, scrape(t, first), "hoteladmin_rate_adjustments_created_total 1")
	assert.Contains(t, scrape(t, second), "hoteladmin_rate_adjustments_created_total 0")
}
