package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/requestctx"
	"gorm.io/gorm/logger"
)

// DatabaseLogger is a GORM logger that writes through the core logger
// and feeds statement timings to the metrics collector
type DatabaseLogger struct {
	coreLogger   coreport.Logger
	logLevel     logger.LogLevel
	timeProvider coreport.TimeProvider
	collector    *MetricsCollector
}

// NewDatabaseLogger creates a new database logger. level is one of
// silent, error, warn or info; anything else means info.
func NewDatabaseLogger(coreLogger coreport.Logger, timeProvider coreport.TimeProvider, level string, collector *MetricsCollector) logger.Interface {
	return &DatabaseLogger{
		coreLogger:   coreLogger,
		logLevel:     parseGormLevel(level),
		timeProvider: timeProvider,
		collector:    collector,
	}
}

func parseGormLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	default:
		return logger.Info
	}
}

// LogMode sets the log level for the logger
func (l *DatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// Info logs info messages
func (l *DatabaseLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

// Warn logs warn messages
func (l *DatabaseLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

// Error logs error messages
func (l *DatabaseLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

// Trace logs SQL statements. Timings are recorded even when logging is silent.
func (l *DatabaseLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := l.timeProvider.Since(begin).Std()
	sql, rows := fc()

	var qm QueryMetrics
	if l.collector != nil {
		qm = l.collector.ObserveStatement(sql, elapsed, rows, err)
	} else {
		qm = QueryMetrics{Operation: extractQueryType(sql), Table: extractTableName(sql)}
	}

	if l.logLevel <= logger.Silent {
		return
	}

	fields := l.baseFields(ctx)
	fields["elapsed"] = elapsed.String()
	fields["rows"] = rows
	fields["sql"] = sql
	if qm.Operation != "" {
		fields["type"] = qm.Operation
	}
	if qm.Table != "" {
		fields["table"] = qm.Table
	}
	if err != nil {
		fields["error"] = err.Error()
	}

	switch {
	case err != nil && l.logLevel >= logger.Error:
		l.coreLogger.Error("SQL Error", fields)
	case l.collector != nil && l.collector.IsSlow(elapsed) && l.logLevel >= logger.Warn:
		l.coreLogger.Warn("Slow SQL Query", fields)
	case l.logLevel >= logger.Info:
		l.coreLogger.Debug("SQL Query", fields)
	}
}

func (l *DatabaseLogger) baseFields(ctx context.Context) map[string]any {
	fields := map[string]any{"source": "database"}
	if requestID := requestctx.RequestID(ctx); requestID != "" {
		fields["request_id"] = requestID
	}
	return fields
}
