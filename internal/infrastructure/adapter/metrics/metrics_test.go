package metrics

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/users/:id", "404"))

	RecordHTTPRequest("GET", "/users/:id", http.StatusNotFound, 15*time.Millisecond)

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/users/:id", "404"))
	assert.Equal(t, before+1, after)
}

func TestRecordHTTPRequestUnmatchedRoute(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404"))
	RecordHTTPRequest("GET", "", http.StatusNotFound, time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestRequestStarted(t *testing.T) {
	base := testutil.ToFloat64(httpInFlight)

	done := RequestStarted()
	assert.Equal(t, base+1, testutil.ToFloat64(httpInFlight))

	done()
	assert.Equal(t, base, testutil.ToFloat64(httpInFlight))
}

func TestRecordPoolStats(t *testing.T) {
	RecordPoolStats(sql.DBStats{OpenConnections: 7, InUse: 3, Idle: 4, MaxOpenConnections: 25, WaitCount: 2})

	assert.Equal(t, float64(7), testutil.ToFloat64(dbPool.WithLabelValues("open")))
	assert.Equal(t, float64(3), testutil.ToFloat64(dbPool.WithLabelValues("in_use")))
	assert.Equal(t, float64(25), testutil.ToFloat64(dbPool.WithLabelValues("max_open")))
	assert.Equal(t, float64(2), testutil.ToFloat64(dbPoolWaits))
}

func TestRecordTransaction(t *testing.T) {
	before := testutil.ToFloat64(transactions.WithLabelValues("atomic", "insufficient_funds"))
	RecordTransaction("atomic", "insufficient_funds")
	assert.Equal(t, before+1, testutil.ToFloat64(transactions.WithLabelValues("atomic", "insufficient_funds")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordQuery("SELECT", "accounts", 2*time.Millisecond, false)
	RecordTokenRevoked()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "bank_api_db_query_duration_seconds")
	assert.Contains(t, body, "bank_api_auth_revoked_tokens_total")
}
