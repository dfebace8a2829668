package logger

import (
	"errors"
	"testing"

	"github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerWritesFields(t *testing.T) {
	observed, logs := observer.New(zap.DebugLevel)
	log := NewZapLoggerFromCore(observed, core.LogLevelDebug)

	log.Info("Transaction recorded", map[string]any{
		"accountId": uint64(7),
		"error":     errors.New("boom"),
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Transaction recorded", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, uint64(7), fields["accountId"])
	assert.Equal(t, "boom", fields["error"])
}

func TestZapLoggerLevels(t *testing.T) {
	observed, logs := observer.New(zap.DebugLevel)
	log := NewZapLoggerFromCore(observed, core.LogLevelWarn)

	log.Debug("debug", nil)
	log.Info("info", nil)
	log.Warn("warn", nil)
	log.Error("error", nil)
	assert.Equal(t, 2, logs.Len())
	assert.Equal(t, core.LogLevelWarn, log.GetLevel())

	log.SetLevel(core.LogLevelDebug)
	log.Debug("debug", nil)
	assert.Equal(t, 3, logs.Len())
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
}

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		value   string
		want    core.LogLevel
		wantErr bool
	}{
		{"debug", core.LogLevelDebug, false},
		{"INFO", core.LogLevelInfo, false},
		{"", core.LogLevelInfo, false},
		{"warning", core.LogLevelWarn, false},
		{"error", core.LogLevelError, false},
		{"verbose", core.LogLevelInfo, true},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			level, err := ParseLogLevel(tc.value)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, level)
		})
	}
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelError)
	log.Error("ignored", map[string]any{"k": "v"})
	assert.Equal(t, core.LogLevelError, log.GetLevel())
	assert.NoError(t, log.Flush())
}
