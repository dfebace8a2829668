package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/bank-api/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(t *testing.T, now *time.Time) (*gin.Engine, *RateLimiter) {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().RunAndReturn(func() time.Time { return *now }).Maybe()

	limiter := NewRateLimiter(1, 2, logger.NewNoopLogger(), clock)
	router := gin.New()
	router.POST("/auth", limiter.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return router, limiter
}

func loginFrom(ip string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/auth", nil)
	req.RemoteAddr = ip + ":12345"
	return req
}

func TestRateLimiterThrottlesPerClient(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	router, _ := newLimitedRouter(t, &now)

	assert.Equal(t, http.StatusOK, serve(router, loginFrom("10.0.0.1")).Code)
	assert.Equal(t, http.StatusOK, serve(router, loginFrom("10.0.0.1")).Code)

	w := serve(router, loginFrom("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, errs.CodeTooManyRequests, decodeError(t, w).Code)

	// another client has its own budget
	assert.Equal(t, http.StatusOK, serve(router, loginFrom("10.0.0.2")).Code)

	// tokens refill over time
	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, serve(router, loginFrom("10.0.0.1")).Code)
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	router, limiter := newLimitedRouter(t, &now)

	serve(router, loginFrom("10.0.0.1"))
	now = now.Add(idleLimiterTTL + time.Second)
	serve(router, loginFrom("10.0.0.2"))

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Len(t, limiter.limiters, 1)
	assert.Contains(t, limiter.limiters, "10.0.0.2")
}
