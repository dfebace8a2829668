package handler

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// HealthChecker reports database health
type HealthChecker interface {
	HealthCheck(ctx context.Context) database.HealthStatus
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	LatencyMs int64  `json:"latencyMs"`
}

// HealthHandler serves the health endpoint
type HealthHandler struct {
	checker HealthChecker
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(checker HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Health handles GET /health. Ping failures are logged by the checker and
// not echoed to the caller.
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.checker.HealthCheck(c.Request.Context())

	if !status.Healthy {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:    "unavailable",
			Database:  "down",
			LatencyMs: status.Latency.Milliseconds(),
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Database:  "up",
		LatencyMs: status.Latency.Milliseconds(),
	})
}
