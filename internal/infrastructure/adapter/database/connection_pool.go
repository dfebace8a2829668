package database

import (
	"context"
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/metrics"
)

// poolExhaustionRatio is the share of in-use connections that triggers a warning
const poolExhaustionRatio = 0.8

// StatsSource exposes connection pool statistics; *sql.DB satisfies it
type StatsSource interface {
	Stats() sql.DBStats
}

// Pinger checks that the database answers; *sql.DB satisfies it
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ConnectionPoolMetrics is a snapshot of the connection pool
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
}

// ConnectionPoolMonitor periodically exports pool statistics to prometheus
type ConnectionPoolMonitor struct {
	source   StatsSource
	logger   coreport.Logger
	latest   ConnectionPoolMetrics
	mutex    sync.RWMutex
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(source StatsSource, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		source:   source,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start collects once immediately and then every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) {
	m.Collect()

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Collect()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop stops the monitoring; calling it more than once is safe
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// GetMetrics returns the last collected snapshot
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.latest
}

// Collect reads the pool statistics, publishes them and warns when the pool is nearly exhausted
func (m *ConnectionPoolMonitor) Collect() ConnectionPoolMetrics {
	stats := m.source.Stats()
	metrics.RecordPoolStats(stats)

	snapshot := ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
	}

	m.mutex.Lock()
	m.latest = snapshot
	m.mutex.Unlock()

	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > float64(stats.MaxOpenConnections)*poolExhaustionRatio {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}

	return snapshot
}

// HealthStatus is the result of a database health check
type HealthStatus struct {
	Healthy bool
	Latency time.Duration
	Error   string
}

// HealthChecker pings the database on demand
type HealthChecker struct {
	pinger       Pinger
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	timeout      time.Duration
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(pinger Pinger, logger coreport.Logger, timeProvider coreport.TimeProvider, timeout time.Duration) *HealthChecker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HealthChecker{
		pinger:       pinger,
		logger:       logger,
		timeProvider: timeProvider,
		timeout:      timeout,
	}
}

// Check pings the database within the checker timeout
func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	ctx, cancel := h.timeProvider.WithTimeout(ctx, coreport.Duration(h.timeout))
	defer cancel()

	start := h.timeProvider.Now()
	err := h.pinger.PingContext(ctx)
	status := HealthStatus{
		Healthy: err == nil,
		Latency: h.timeProvider.Since(start).Std(),
	}

	if err != nil {
		status.Error = err.Error()
		h.logger.Error("Database ping failed", map[string]any{
			"error": err.Error(),
		})
	}

	return status
}
