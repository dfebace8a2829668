package handler

import (
	"errors"
	"maps"
	"strconv"

	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/domain/validator"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/requestctx"
	"github.com/gin-gonic/gin"
)

// baseHandler holds what every handler needs to report errors
type baseHandler struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// respondError logs err and writes its error payload
func (h *baseHandler) respondError(c *gin.Context, err error) {
	status := errs.StatusCode(err)

	fields := map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     status,
		"request_id": requestctx.RequestID(c.Request.Context()),
	}
	var appErr *errs.ApplicationError
	if errors.As(err, &appErr) {
		maps.Copy(fields, appErr.LogFields())
	} else {
		fields["error"] = err.Error()
	}

	if status >= 500 {
		h.logger.Error("Request failed", fields)
	} else {
		h.logger.Debug("Request rejected", fields)
	}

	_ = c.Error(err)
	c.JSON(status, dto.NewErrorResponse(err, h.timeProvider.Now()))
}

// bindJSON decodes the request body into obj, answering 400 on failure
func (h *baseHandler) bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.respondError(c, errs.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return true
}

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, name string) (uint64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || !validator.IsValidID(id) {
		return 0, errs.NewBadRequestError("Invalid ID: " + raw)
	}
	return id, nil
}

func uintString(id uint64) string {
	return strconv.FormatUint(id, 10)
}
