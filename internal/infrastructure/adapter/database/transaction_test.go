package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/time"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const setIsolation = "SET TRANSACTION ISOLATION LEVEL READ COMMITTED"

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})
	return db, mock
}

func newTestUnitOfWork(t *testing.T) (persistence.UnitOfWork, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	uow := NewUnitOfWork(db, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider(), UnitOfWorkConfig{
		Isolation: IsolationReadCommitted,
		Retry:     RetryConfig{MaxRetries: 3, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond},
	})
	return uow, mock
}

func newTestTransaction() *entity.Transaction {
	return &entity.Transaction{
		Amount:      decimal.RequireFromString("-300"),
		Description: "rent",
		AccountID:   7,
	}
}

func expectBegin(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(setIsolation)).WillReturnResult(sqlmock.NewResult(0, 0))
}

func TestUnitOfWorkExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("commits when fn succeeds", func(t *testing.T) {
		uow, mock := newTestUnitOfWork(t)

		expectBegin(mock)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE id = $1 FOR UPDATE`)).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"id", "balance", "account_type", "owner_id"}).AddRow(7, "400.00", "Checking", 1))
		mock.ExpectCommit()

		var balance string
		err := uow.Execute(ctx, func(txCtx context.Context) error {
			account, err := uow.GetAccountRepository(txCtx).GetByIDForUpdate(txCtx, 7)
			if err != nil {
				return err
			}
			balance = account.Balance.StringFixed(2)
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, "400.00", balance)
	})

	t.Run("rolls back and returns the domain error", func(t *testing.T) {
		uow, mock := newTestUnitOfWork(t)

		expectBegin(mock)
		mock.ExpectRollback()

		err := uow.Execute(ctx, func(context.Context) error {
			return errs.NewInsufficientFundsError("")
		})

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
	})

	t.Run("serialization failure on commit is retried", func(t *testing.T) {
		uow, mock := newTestUnitOfWork(t)

		expectBegin(mock)
		mock.ExpectCommit().WillReturnError(errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)"))
		expectBegin(mock)
		mock.ExpectCommit()

		calls := 0
		err := uow.Execute(ctx, func(context.Context) error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("begin failure is an internal error", func(t *testing.T) {
		uow, mock := newTestUnitOfWork(t)

		mock.ExpectBegin().WillReturnError(errors.New("permission denied"))

		err := uow.Execute(ctx, func(context.Context) error {
			t.Fatal("fn must not run without a transaction")
			return nil
		})

		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})

	t.Run("panic rolls back and propagates", func(t *testing.T) {
		uow, mock := newTestUnitOfWork(t)

		expectBegin(mock)
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_ = uow.Execute(ctx, func(context.Context) error {
				panic("boom")
			})
		})
	})
}

func TestUnitOfWorkRepositoriesShareTransaction(t *testing.T) {
	ctx := context.Background()
	uow, mock := newTestUnitOfWork(t)

	expectBegin(mock)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "transactions"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "accounts" SET "balance"=$1 WHERE id = $2`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := uow.Execute(ctx, func(txCtx context.Context) error {
		saved, err := uow.GetTransactionRepository(txCtx).Save(txCtx, newTestTransaction())
		if err != nil {
			return err
		}
		assert.Equal(t, uint64(11), saved.ID)
		return uow.GetAccountRepository(txCtx).UpdateBalance(txCtx, 7, saved.Amount)
	})

	require.NoError(t, err)
}

func TestUnitOfWorkCommitWithoutTransaction(t *testing.T) {
	uow, _ := newTestUnitOfWork(t)

	assert.Error(t, uow.Commit(context.Background()))
	assert.Error(t, uow.Rollback(context.Background()))
}

func TestParseIsolationLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected IsolationLevel
		wantErr  bool
	}{
		{"", IsolationReadCommitted, false},
		{"read committed", IsolationReadCommitted, false},
		{"REPEATABLE_READ", IsolationRepeatableRead, false},
		{" serializable ", IsolationSerializable, false},
		{"read uncommitted; DROP TABLE users", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			level, err := ParseIsolationLevel(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}
}
