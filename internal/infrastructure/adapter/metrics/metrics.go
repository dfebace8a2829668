// Package metrics holds the prometheus collectors of the service
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bank_api"

var (
	// Registry holds the application-specific collectors
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	dbQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Duration of SQL statements.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"operation", "table", "failed"},
	)

	dbPool = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool connections by state.",
		},
		[]string{"state"},
	)

	dbPoolWaits = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_wait_count",
			Help:      "Total number of connections waited for.",
		},
	)

	transactions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "transactions_total",
			Help:      "Transactions submitted, by balance check mode and outcome.",
		},
		[]string{"mode", "outcome"},
	)

	revokedTokens = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "revoked_tokens_total",
			Help:      "Total number of tokens revoked by logout.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		dbQueryDuration,
		dbPool,
		dbPoolWaits,
		transactions,
		revokedTokens,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered metrics
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted increments the in-flight gauge and returns the matching decrement
func RequestStarted() func() {
	httpInFlight.Inc()
	return httpInFlight.Dec
}

// RecordHTTPRequest records a finished request. route is the matched route
// template, never the raw path, to keep label cardinality bounded.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordQuery records the duration of one SQL statement
func RecordQuery(operation, table string, duration time.Duration, failed bool) {
	if operation == "" {
		operation = "other"
	}
	if table == "" {
		table = "unknown"
	}
	dbQueryDuration.WithLabelValues(operation, table, strconv.FormatBool(failed)).Observe(duration.Seconds())
}

// RecordPoolStats publishes a snapshot of the connection pool
func RecordPoolStats(stats sql.DBStats) {
	dbPool.WithLabelValues("open").Set(float64(stats.OpenConnections))
	dbPool.WithLabelValues("in_use").Set(float64(stats.InUse))
	dbPool.WithLabelValues("idle").Set(float64(stats.Idle))
	dbPool.WithLabelValues("max_open").Set(float64(stats.MaxOpenConnections))
	dbPoolWaits.Set(float64(stats.WaitCount))
}

// RecordTransaction counts a submitted transaction by outcome
func RecordTransaction(mode, outcome string) {
	transactions.WithLabelValues(mode, outcome).Inc()
}

// RecordTokenRevoked counts a logout
func RecordTokenRevoked() {
	revokedTokens.Inc()
}
