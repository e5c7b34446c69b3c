// Package observability exposes the Prometheus collectors for the service.
// All recording methods are safe on a nil *Metrics so components can run
// without instrumentation in tests.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "biasgame"

// Metrics holds all Prometheus collectors.
type Metrics struct {
	gatherer prometheus.Gatherer

	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	submissions      *prometheus.CounterVec
	pointsAwarded    prometheus.Counter
	scoreDuration    prometheus.Histogram
	cacheLookups     *prometheus.CounterVec
	generations      *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors on reg. When pool is
// non-nil, connection pool gauges are registered as well.
func NewMetrics(reg *prometheus.Registry, pool *pgxpool.Pool) *Metrics {
	m := &Metrics{
		gatherer: reg,
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds, by route, method and status.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
		requestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "submissions_total",
				Help:      "Scored submissions, by mode and outcome (passed, failed, error).",
			},
			[]string{"mode", "outcome"},
		),
		pointsAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_awarded_total",
			Help:      "Total points granted to users.",
		}),
		scoreDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bias_score_duration_seconds",
			Help:      "Latency of uncached bias model calls.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20},
		}),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Cache lookups, by cache name and result (hit, miss).",
			},
			[]string{"cache", "result"},
		),
		generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generations_total",
				Help:      "Text generation calls, by provider and outcome (ok, error).",
			},
			[]string{"provider", "outcome"},
		),
	}

	reg.MustRegister(
		m.requestDuration,
		m.requestsInFlight,
		m.submissions,
		m.pointsAwarded,
		m.scoreDuration,
		m.cacheLookups,
		m.generations,
	)

	if pool != nil {
		reg.MustRegister(
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "db_pool_acquired_conns",
				Help:      "Number of acquired database connections.",
			}, func() float64 { return float64(pool.Stat().AcquiredConns()) }),
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "db_pool_idle_conns",
				Help:      "Number of idle database connections.",
			}, func() float64 { return float64(pool.Stat().IdleConns()) }),
		)
	}

	return m
}

// Handler serves the registered collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(d.Seconds())
}

// RequestStarted increments the in-flight gauge and returns its decrement.
func (m *Metrics) RequestStarted() func() {
	if m == nil {
		return func() {}
	}
	m.requestsInFlight.Inc()
	return m.requestsInFlight.Dec
}

// ObserveSubmission records a submission outcome and its award.
func (m *Metrics) ObserveSubmission(mode, outcome string, points int) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(mode, outcome).Inc()
	if points > 0 {
		m.pointsAwarded.Add(float64(points))
	}
}

// ObserveScore records the latency of one model call.
func (m *Metrics) ObserveScore(d time.Duration) {
	if m == nil {
		return
	}
	m.scoreDuration.Observe(d.Seconds())
}

// ObserveCache records a cache hit or miss for the named cache.
func (m *Metrics) ObserveCache(cache string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(cache, result).Inc()
}

// ObserveGeneration records one text-generation call.
func (m *Metrics) ObserveGeneration(provider string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.generations.WithLabelValues(provider, outcome).Inc()
}
