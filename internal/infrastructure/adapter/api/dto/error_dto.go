package dto

import (
	"time"

	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	StatusCode int       `json:"statusCode"`
	Code       int       `json:"code"`
	Message    string    `json:"message"`
	Reason     string    `json:"reason"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewErrorResponse builds the payload for err at the given time
func NewErrorResponse(err error, now time.Time) ErrorResponse {
	return ErrorResponse{
		StatusCode: errs.StatusCode(err),
		Code:       errs.ErrorCode(err),
		Message:    errs.Message(err),
		Reason:     errs.Reason(err),
		Timestamp:  now,
	}
}
