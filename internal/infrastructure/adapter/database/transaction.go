package database

import (
	"context"
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// IsolationLevel is a postgres transaction isolation level
type IsolationLevel string

const (
	IsolationReadCommitted  IsolationLevel = "READ COMMITTED"
	IsolationRepeatableRead IsolationLevel = "REPEATABLE READ"
	IsolationSerializable   IsolationLevel = "SERIALIZABLE"
)

// ParseIsolationLevel accepts the level in any case, with spaces or underscores
func ParseIsolationLevel(value string) (IsolationLevel, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(value), "_", " "))
	switch IsolationLevel(normalized) {
	case "":
		return IsolationReadCommitted, nil
	case IsolationReadCommitted, IsolationRepeatableRead, IsolationSerializable:
		return IsolationLevel(normalized), nil
	default:
		return "", fmt.Errorf("unsupported isolation level: %s", value)
	}
}

// UnitOfWorkConfig tunes how units of work open and retry transactions
type UnitOfWorkConfig struct {
	Isolation IsolationLevel
	Retry     RetryConfig
}

// DefaultUnitOfWorkConfig returns read committed isolation with the default retry policy
func DefaultUnitOfWorkConfig() UnitOfWorkConfig {
	return UnitOfWorkConfig{
		Isolation: IsolationReadCommitted,
		Retry:     DefaultRetryConfig(),
	}
}

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	config       UnitOfWorkConfig
	errorMapper  *ErrorMapper
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, config UnitOfWorkConfig) persistence.UnitOfWork {
	if config.Isolation == "" {
		config.Isolation = IsolationReadCommitted
	}
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		config:       config,
		errorMapper:  NewErrorMapper(),
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.logger.Debug("Beginning database transaction", map[string]any{"isolation": string(u.config.Isolation)})

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL " + string(u.config.Isolation)).Error; err != nil {
		tx.Rollback()
		u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
		return ctx, fmt.Errorf("failed to set transaction isolation level: %w", err)
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Rollback rolls back the current transaction. Rolling back a finished
// transaction is not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// Execute runs fn in a transaction, retrying the whole unit when the store
// reports a serialization failure, deadlock or dropped connection
func (u *UnitOfWork) Execute(ctx context.Context, fn func(txCtx context.Context) error) error {
	start := u.timeProvider.Now()

	err := RetryOnTransientError(ctx, u.config.Retry, func() error {
		return u.executeOnce(ctx, fn)
	}, u.logger)

	u.logger.Debug("Unit of work finished", map[string]any{
		"duration_ms": u.timeProvider.Since(start).Std().Milliseconds(),
		"failed":      err != nil,
	})

	return u.errorMapper.MapError(err, "executing transaction")
}

func (u *UnitOfWork) executeOnce(ctx context.Context, fn func(txCtx context.Context) error) (err error) {
	txCtx, err := u.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = u.Rollback(txCtx)
			panic(r)
		}
	}()

	if err = fn(txCtx); err != nil {
		if rbErr := u.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Rollback after failed unit of work did not succeed", map[string]any{
				"error":          err.Error(),
				"rollback_error": rbErr.Error(),
			})
		}
		return err
	}

	return u.Commit(txCtx)
}

// GetAccountRepository returns an account repository in the current transaction
func (u *UnitOfWork) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	return repository.NewAccountRepository(u.getDbFromContext(ctx), u.logger)
}

// GetTransactionRepository returns a transaction repository in the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
