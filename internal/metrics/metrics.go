// Package metrics provides Prometheus metrics for the site server
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contains the collectors exported by the site server
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal     *prometheus.CounterVec
	httpRequestDuration   *prometheus.HistogramVec
	reservationsTotal     *prometheus.CounterVec
	quotesTotal           *prometheus.CounterVec
	pageCacheLookupsTotal *prometheus.CounterVec
}

// New creates the site metrics and registers them, together with the Go
// runtime and process collectors, on a fresh registry
func New() (*Metrics, error) {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nova_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	m.httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nova_http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	m.reservationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nova_reservations_total",
			Help: "Total number of reservation form submissions",
		},
		[]string{"outcome"}, // outcome: accepted, invalid, error
	)

	m.quotesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nova_menu_quotes_total",
			Help: "Total number of customization price quotes",
		},
		[]string{"outcome"}, // outcome: ok, invalid, not_found
	)

	m.pageCacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nova_page_cache_lookups_total",
			Help: "Rendered page cache lookups",
		},
		[]string{"result"}, // result: hit, miss
	)

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.reservationsTotal,
		m.quotesTotal,
		m.pageCacheLookupsTotal,
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Registry returns the registry holding the site metrics
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecordReservation counts a reservation submission by outcome
func (m *Metrics) RecordReservation(outcome string) {
	if m == nil {
		return
	}
	m.reservationsTotal.WithLabelValues(outcome).Inc()
}

// RecordQuote counts a price quote by outcome
func (m *Metrics) RecordQuote(outcome string) {
	if m == nil {
		return
	}
	m.quotesTotal.WithLabelValues(outcome).Inc()
}

// RecordPageCache counts a rendered page cache lookup
func (m *Metrics) RecordPageCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.pageCacheLookupsTotal.WithLabelValues(result).Inc()
}
