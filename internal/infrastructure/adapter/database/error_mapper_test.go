package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorMapper(t *testing.T) {
	mapper := NewErrorMapper()

	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{"Domain error passes through", errs.NewInsufficientFundsError(""), errs.ErrInsufficientFunds},
		{"Wrapped domain error passes through", fmt.Errorf("tx: %w", errs.NewBadRequestError("x")), errs.ErrBadRequest},
		{"Deadline", context.DeadlineExceeded, errs.ErrInternalServer},
		{"Foreign key", gorm.ErrForeignKeyViolated, errs.ErrResourcePersistence},
		{"Duplicate", gorm.ErrDuplicatedKey, errs.ErrResourcePersistence},
		{"Serialization", errors.New("ERROR: could not serialize access (SQLSTATE 40001)"), errs.ErrInternalServer},
		{"Unknown", errors.New("permission denied"), errs.ErrInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, mapper.MapError(tc.err, "executing transaction"), tc.expected)
		})
	}

	t.Run("Nil", func(t *testing.T) {
		assert.NoError(t, mapper.MapError(nil, "executing transaction"))
	})

	t.Run("Reason names the operation", func(t *testing.T) {
		err := mapper.MapError(errors.New("permission denied"), "executing transaction")
		assert.Equal(t, "Failed executing transaction.", errs.Reason(err))
	})
}
