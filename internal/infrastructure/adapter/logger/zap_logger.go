package logger

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements the Logger interface using Zap
type ZapLogger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

// NewZapLogger creates a zap-based logger. Production uses JSON output,
// development a colored console encoder.
func NewZapLogger(isProduction bool, level core.LogLevel) (core.Logger, error) {
	var cfg zap.Config
	if isProduction {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.Level = zap.NewAtomicLevelAt(toZapLevel(level))

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &ZapLogger{
		logger: zapLogger.With(zap.String("service", "bank-api")),
		level:  cfg.Level,
	}, nil
}

// NewZapLoggerFromCore wraps an existing zap core, mainly for tests
func NewZapLoggerFromCore(zapCore zapcore.Core, level core.LogLevel) core.Logger {
	atomic := zap.NewAtomicLevelAt(toZapLevel(level))
	return &ZapLogger{
		logger: zap.New(zapCore, zap.IncreaseLevel(atomic)),
		level:  atomic,
	}
}

// ParseLogLevel converts a configuration value such as "debug" or "WARN" to a LogLevel
func ParseLogLevel(value string) (core.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return core.LogLevelDebug, nil
	case "", "info":
		return core.LogLevelInfo, nil
	case "warn", "warning":
		return core.LogLevelWarn, nil
	case "error":
		return core.LogLevelError, nil
	default:
		return core.LogLevelInfo, fmt.Errorf("invalid log level: %s", value)
	}
}

func toZapLevel(level core.LogLevel) zapcore.Level {
	switch level {
	case core.LogLevelDebug:
		return zap.DebugLevel
	case core.LogLevelWarn:
		return zap.WarnLevel
	case core.LogLevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// SetLevel sets the minimum log level
func (l *ZapLogger) SetLevel(level core.LogLevel) {
	l.level.SetLevel(toZapLevel(level))
}

// GetLevel gets the current log level
func (l *ZapLogger) GetLevel() core.LogLevel {
	switch l.level.Level() {
	case zap.DebugLevel:
		return core.LogLevelDebug
	case zap.WarnLevel:
		return core.LogLevelWarn
	case zap.ErrorLevel:
		return core.LogLevelError
	default:
		return core.LogLevelInfo
	}
}

// mapToZapFields converts a map of fields to zap fields
func mapToZapFields(fields map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		if err, ok := v.(error); ok {
			zapFields = append(zapFields, zap.NamedError(k, err))
			continue
		}
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields map[string]any) {
	if ce := l.logger.Check(zap.DebugLevel, message); ce != nil {
		ce.Write(mapToZapFields(fields)...)
	}
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields map[string]any) {
	if ce := l.logger.Check(zap.InfoLevel, message); ce != nil {
		ce.Write(mapToZapFields(fields)...)
	}
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields map[string]any) {
	if ce := l.logger.Check(zap.WarnLevel, message); ce != nil {
		ce.Write(mapToZapFields(fields)...)
	}
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields map[string]any) {
	if ce := l.logger.Check(zap.ErrorLevel, message); ce != nil {
		ce.Write(mapToZapFields(fields)...)
	}
}

// Flush ensures all buffered logs are written
func (l *ZapLogger) Flush() error {
	return l.logger.Sync()
}
