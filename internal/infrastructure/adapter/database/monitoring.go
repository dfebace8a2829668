package database

import (
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/metrics"
)

// defaultSlowQueryThreshold is the elapsed time above which a statement is reported as slow
const defaultSlowQueryThreshold = 200 * time.Millisecond

// QueryMetrics describes one executed SQL statement
type QueryMetrics struct {
	Operation    string
	Table        string
	Duration     time.Duration
	RowsAffected int64
	Failed       bool
}

// MetricsCollector exports statement timings to prometheus
type MetricsCollector struct {
	logger        coreport.Logger
	slowThreshold time.Duration
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger) *MetricsCollector {
	return &MetricsCollector{
		logger:        logger,
		slowThreshold: defaultSlowQueryThreshold,
	}
}

// ObserveStatement records a statement and returns what was recorded
func (c *MetricsCollector) ObserveStatement(sql string, elapsed time.Duration, rows int64, err error) QueryMetrics {
	qm := QueryMetrics{
		Operation:    extractQueryType(sql),
		Table:        extractTableName(sql),
		Duration:     elapsed,
		RowsAffected: rows,
		Failed:       err != nil,
	}

	metrics.RecordQuery(qm.Operation, qm.Table, qm.Duration, qm.Failed)
	return qm
}

// IsSlow reports whether a statement took longer than the slow threshold
func (c *MetricsCollector) IsSlow(elapsed time.Duration) bool {
	return c.slowThreshold > 0 && elapsed > c.slowThreshold
}

// extractQueryType returns the leading SQL verb
func extractQueryType(sql string) string {
	sqlUpper := strings.ToUpper(strings.TrimSpace(sql))
	for _, verb := range []string{"SELECT", "INSERT", "UPDATE", "DELETE"} {
		if strings.HasPrefix(sqlUpper, verb) {
			return verb
		}
	}
	return ""
}

// extractTableName returns the first table named after FROM, INTO or UPDATE.
// It does not parse SQL; joins and subqueries report the first table only.
func extractTableName(sql string) string {
	sql = strings.TrimSpace(sql)
	sqlUpper := strings.ToUpper(sql)

	var start int
	switch {
	case strings.Contains(sqlUpper, " FROM "):
		start = strings.Index(sqlUpper, " FROM ") + len(" FROM ")
	case strings.Contains(sqlUpper, " INTO "):
		start = strings.Index(sqlUpper, " INTO ") + len(" INTO ")
	case strings.HasPrefix(sqlUpper, "UPDATE "):
		start = len("UPDATE ")
	default:
		return ""
	}

	remainder := strings.TrimSpace(sql[start:])
	if end := strings.IndexAny(remainder, " (\n\t"); end != -1 {
		remainder = remainder[:end]
	}
	return strings.ToLower(strings.Trim(remainder, `"`))
}
