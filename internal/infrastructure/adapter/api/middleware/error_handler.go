package middleware

import (
	"fmt"

	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/requestctx"
	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from panics and returns appropriate error responses
func ErrorHandler(logger coreport.Logger, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      fmt.Sprint(recovered),
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": requestctx.RequestID(c.Request.Context()),
					"user_agent": c.Request.UserAgent(),
				})

				abortWithError(c, errs.NewInternalServerError("", nil), timeProvider)
			}
		}()

		c.Next()
	}
}

// abortWithError stops the chain and writes the error payload for err
func abortWithError(c *gin.Context, err error, timeProvider coreport.TimeProvider) {
	c.AbortWithStatusJSON(errs.StatusCode(err), dto.NewErrorResponse(err, timeProvider.Now()))
}
