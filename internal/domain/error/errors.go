package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeBadRequest            = 4000
	CodeAuthentication        = 4010
	CodeInsufficientFunds     = 4020
	CodeForbidden             = 4030
	CodeResourceNotFound      = 4040
	CodeOperationNotSupported = 4050
	CodeResourcePersistence   = 4090
	CodeTooManyRequests       = 4290

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeNotImplemented = 5010
)

// DefaultReason is used when an error is raised without a caller-supplied reason
const DefaultReason = "Unspecified reason"

// Base error kinds
var (
	// ErrBadRequest is returned for malformed or missing input, including invalid id shapes
	ErrBadRequest = errors.New("bad request")

	// ErrResourceNotFound is returned when a valid lookup key matches no record
	ErrResourceNotFound = errors.New("resource not found")

	// ErrAuthentication is returned when credentials do not match or no principal is present
	ErrAuthentication = errors.New("authentication failed")

	// ErrForbidden is returned when the principal lacks the required role
	ErrForbidden = errors.New("forbidden")

	// ErrInsufficientFunds is returned when a transaction would overdraw an account
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrResourcePersistence is returned when a referenced entity is missing or a uniqueness rule is violated
	ErrResourcePersistence = errors.New("resource persistence conflict")

	// ErrOperationNotSupported is returned for operations refused by policy
	ErrOperationNotSupported = errors.New("operation not supported")

	// ErrTooManyRequests is returned when a client exceeds its request rate
	ErrTooManyRequests = errors.New("too many requests")

	// ErrNotImplemented is returned for operations that are not available yet
	ErrNotImplemented = errors.New("not implemented")

	// ErrInternalServer is returned for store or transport failures
	ErrInternalServer = errors.New("internal server error")
)

// kindDetails holds the fixed user-facing message, status and code of a kind
type kindDetails struct {
	message string
	status  int
	code    int
}

var kinds = map[error]kindDetails{
	ErrBadRequest:            {"Bad request. Invalid parameters entered.", http.StatusBadRequest, CodeBadRequest},
	ErrResourceNotFound:      {"Resource not found.", http.StatusNotFound, CodeResourceNotFound},
	ErrAuthentication:        {"Authentication failed.", http.StatusUnauthorized, CodeAuthentication},
	ErrForbidden:             {"You are not permitted to perform this action.", http.StatusForbidden, CodeForbidden},
	ErrInsufficientFunds:     {"You do not have enough funds for this transaction.", http.StatusBadRequest, CodeInsufficientFunds},
	ErrResourcePersistence:   {"The resource could not be persisted.", http.StatusConflict, CodeResourcePersistence},
	ErrOperationNotSupported: {"This operation is not supported.", http.StatusMethodNotAllowed, CodeOperationNotSupported},
	ErrTooManyRequests:       {"Too many requests. Please try again later.", http.StatusTooManyRequests, CodeTooManyRequests},
	ErrNotImplemented:        {"Not implemented yet. Work in progress.", http.StatusNotImplemented, CodeNotImplemented},
	ErrInternalServer:        {"Internal Server Error.", http.StatusInternalServerError, CodeInternalServer},
}

// ApplicationError is a domain error of a given kind with a free-text reason.
// Cause is kept for logging only and never shown to callers.
type ApplicationError struct {
	Kind   error
	Reason string
	Cause  error
}

// Error implements the error interface
func (e *ApplicationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Reason)
}

// Is reports whether target is the kind of this error
func (e *ApplicationError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying cause
func (e *ApplicationError) Unwrap() error {
	return e.Cause
}

// LogFields returns a map of fields for structured logging
func (e *ApplicationError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": e.Kind.Error(),
		"reason":     e.Reason,
		"error_code": ErrorCode(e),
	}
	if e.Cause != nil {
		fields["cause"] = e.Cause.Error()
	}
	return fields
}

func newApplicationError(kind error, reason string, cause error) error {
	if reason == "" {
		reason = DefaultReason
	}
	return &ApplicationError{Kind: kind, Reason: reason, Cause: cause}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(reason string) error {
	return newApplicationError(ErrBadRequest, reason, nil)
}

// NewResourceNotFoundError creates a not found error
func NewResourceNotFoundError(reason string) error {
	return newApplicationError(ErrResourceNotFound, reason, nil)
}

// NewAuthenticationError creates an authentication error
func NewAuthenticationError(reason string) error {
	return newApplicationError(ErrAuthentication, reason, nil)
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError(reason string) error {
	return newApplicationError(ErrForbidden, reason, nil)
}

// NewInsufficientFundsError creates an insufficient funds error
func NewInsufficientFundsError(reason string) error {
	return newApplicationError(ErrInsufficientFunds, reason, nil)
}

// NewResourcePersistenceError creates a persistence/conflict error
func NewResourcePersistenceError(reason string) error {
	return newApplicationError(ErrResourcePersistence, reason, nil)
}

// NewOperationNotSupportedError creates an operation not supported error
func NewOperationNotSupportedError(reason string) error {
	return newApplicationError(ErrOperationNotSupported, reason, nil)
}

// NewTooManyRequestsError creates a rate limit error
func NewTooManyRequestsError(reason string) error {
	return newApplicationError(ErrTooManyRequests, reason, nil)
}

// NewNotImplementedError creates a work in progress error
func NewNotImplementedError(reason string) error {
	return newApplicationError(ErrNotImplemented, reason, nil)
}

// NewInternalServerError creates an internal error wrapping the store or transport cause
func NewInternalServerError(reason string, cause error) error {
	return newApplicationError(ErrInternalServer, reason, cause)
}

// kindOf returns the details of the first known kind matched by err
func kindOf(err error) kindDetails {
	for _, kind := range []error{
		ErrBadRequest,
		ErrResourceNotFound,
		ErrAuthentication,
		ErrForbidden,
		ErrInsufficientFunds,
		ErrResourcePersistence,
		ErrOperationNotSupported,
		ErrTooManyRequests,
		ErrNotImplemented,
	} {
		if errors.Is(err, kind) {
			return kinds[kind]
		}
	}
	return kinds[ErrInternalServer]
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	return kindOf(err).code
}

// StatusCode returns the HTTP status code for an error
func StatusCode(err error) int {
	return kindOf(err).status
}

// Message returns the fixed human-readable message for an error's kind
func Message(err error) string {
	return kindOf(err).message
}

// Reason returns the caller-supplied reason of an application error
func Reason(err error) string {
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Reason
	}
	return DefaultReason
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrResourceNotFound)
}

// IsInsufficientFundsError checks if the error is an insufficient funds error
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}
