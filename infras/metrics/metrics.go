package metrics

import (
	"net/http"
	"strconv"
	"time"

	"hoteladmin/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "hoteladmin"

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Metrics owns a private registry so each instance, including the ones
// built in tests, starts from zero.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests       *prometheus.CounterVec
	httpLatency        *prometheus.HistogramVec
	adjustmentsCreated prometheus.Counter
	cascadeDeletes     *prometheus.CounterVec
	eventsPublished    *prometheus.CounterVec
}

func New(config *config.Config) *Metrics {
	namespace := config.Metrics.Namespace
	if namespace == "" {
		namespace = defaultNamespace
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
			[]string{"route", "method", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		adjustmentsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "rate_adjustments_created_total", Help: "Rate adjustments appended."},
		),
		cascadeDeletes: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "cascade_deletes_total", Help: "Committed cascade deletes by root entity."},
			[]string{"entity"},
		),
		eventsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "events_published_total", Help: "Domain events handed to the broker."},
			[]string{"event", "status"},
		),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpLatency,
		m.adjustmentsCreated,
		m.cascadeDeletes,
		m.eventsPublished,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTP(route, method string, status int, dur time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func (m *Metrics) AdjustmentCreated() {
	m.adjustmentsCreated.Inc()
}

func (m *Metrics) CascadeDeleted(entity string) {
	m.cascadeDeletes.WithLabelValues(entity).Inc()
}

func (m *Metrics) EventPublished(event string, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}

	m.eventsPublished.WithLabelValues(event, status).Inc()
}
