package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments for the parse API, registered
// on a private registry so the /metrics endpoint only exposes our own
// series.
type Metrics struct {
	registry *prometheus.Registry

	parsesTotal   *prometheus.CounterVec
	parseDuration prometheus.Histogram
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		parsesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crfcf",
			Name:      "parses_total",
			Help:      "Parse requests by outcome.",
		}, []string{"outcome"}),
		parseDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "crfcf",
			Name:      "parse_duration_seconds",
			Help:      "Wall-clock duration of document parses.",
			// Parses are sub-millisecond for typical documents; buckets
			// span 100µs to ~400ms.
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
	}
	m.registry.MustRegister(m.parsesTotal, m.parseDuration)
	return m
}

// ObserveParse records one parse with its outcome ("ok" or "error").
func (m *Metrics) ObserveParse(outcome string, d time.Duration) {
	m.parsesTotal.WithLabelValues(outcome).Inc()
	m.parseDuration.Observe(d.Seconds())
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
