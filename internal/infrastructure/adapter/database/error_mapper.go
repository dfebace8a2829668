package database

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps raw database errors raised outside the repositories
// (begin, commit, ping) to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error. Errors that already
// carry a domain kind are returned unchanged.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var appErr *errs.ApplicationError
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		return errs.NewInternalServerError(fmt.Sprintf("Timed out while %s.", operation), err)
	case m.classifier.IsForeignKeyError(err):
		return errs.NewResourcePersistenceError("The resource is referenced by or references a missing record.")
	case m.classifier.IsDuplicateKeyError(err):
		return errs.NewResourcePersistenceError("The resource already exists.")
	case m.classifier.IsLockError(err):
		return errs.NewInternalServerError(fmt.Sprintf("Concurrent update while %s.", operation), err)
	default:
		return errs.NewInternalServerError(fmt.Sprintf("Failed %s.", operation), err)
	}
}
