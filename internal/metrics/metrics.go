// Package metrics provides Prometheus metrics for the HTTP API and storage layer.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "usertodo"

// Metrics owns a private registry and the collectors recorded by the HTTP middleware.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpInFlight        prometheus.Gauge
	errorsByType        *prometheus.CounterVec
}

// New registers all collectors, including Go runtime and process collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	auto := promauto.With(reg)
	return &Metrics{
		registry: reg,
		httpRequests: auto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by route, method and status code.",
			},
			[]string{"route", "method", "status_code"},
		),
		httpRequestDuration: auto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency by route, method and status code.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method", "status_code"},
		),
		httpInFlight: auto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Number of HTTP requests currently being served.",
			},
		),
		errorsByType: auto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "errors_total",
				Help:      "HTTP error responses by route and error type.",
			},
			[]string{"route", "type"},
		),
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RequestStarted increments the in-flight gauge.
func (m *Metrics) RequestStarted() {
	m.httpInFlight.Inc()
}

// RequestFinished records a completed request and decrements the in-flight gauge.
func (m *Metrics) RequestFinished(route, method string, status int, seconds float64) {
	m.httpInFlight.Dec()

	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(route, method, code).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, code).Observe(seconds)

	if status >= http.StatusBadRequest {
		m.errorsByType.WithLabelValues(route, ErrorType(status)).Inc()
	}
}

// ErrorType returns a standardized error type based on HTTP status code.
func ErrorType(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "server_error"
	case status == http.StatusNotFound:
		return "not_found"
	case status >= http.StatusBadRequest:
		return "client_error"
	default:
		return "none"
	}
}
