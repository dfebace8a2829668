package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	"github.com/amirhossein-jamali/bank-api/internal/domain/validator"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountColumns = []string{"id", "balance", "account_type", "owner_id"}

func TestAccountRepositoryReads(t *testing.T) {
	ctx := context.Background()

	t.Run("GetAll", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" ORDER BY id`)).
			WillReturnRows(sqlmock.NewRows(accountColumns).
				AddRow(1, "400.00", "Checking", 1).
				AddRow(2, "-0.50", "Savings", 2))

		accounts, err := repo.GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, accounts, 2)
		assert.Equal(t, "400.00", entity.FormatAmount(accounts[0].Balance))
		assert.Equal(t, "Savings", accounts[1].Type)
	})

	t.Run("GetByID unknown", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE id = $1`)).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows(accountColumns))

		account, err := repo.GetByID(ctx, 5)

		require.NoError(t, err)
		assert.True(t, validator.IsEmptyObject(account))
	})

	t.Run("GetByIDForUpdate locks the row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE id = $1 FOR UPDATE`)).
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows(accountColumns).AddRow(3, "400.00", "Checking", 1))

		account, err := repo.GetByIDForUpdate(ctx, 3)

		require.NoError(t, err)
		assert.True(t, account.Balance.Equal(decimal.NewFromInt(400)))
	})

	t.Run("OwnerExists", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "users" WHERE id = $1`)).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.OwnerExists(ctx, 1)

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Store failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(`FROM "accounts"`).WillReturnError(errors.New("broken pipe"))

		_, err := repo.GetByID(ctx, 1)

		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}

func TestAccountRepositoryWrites(t *testing.T) {
	ctx := context.Background()

	t.Run("Save assigns id", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "accounts" ("balance","account_type","owner_id")`)).
			WithArgs(sqlmock.AnyArg(), "Checking", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

		account, err := repo.Save(ctx, &entity.Account{Balance: decimal.NewFromInt(50), Type: "Checking", OwnerID: 1})

		require.NoError(t, err)
		assert.Equal(t, uint64(9), account.ID)
		assert.Equal(t, "50.00", entity.FormatAmount(account.Balance))
	})

	t.Run("Update changes the type only", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, logger.NewNoopLogger())

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "accounts" SET "account_type"=$1 WHERE id = $2`)).
			WithArgs("Savings", 3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.Update(ctx, &entity.Account{ID: 3, Balance: decimal.NewFromInt(999), Type: "Savings", OwnerID: 1})

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("UpdateBalance", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, logger.NewNoopLogger())

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "accounts" SET "balance"=$1 WHERE id = $2`)).
			WithArgs(sqlmock.AnyArg(), 3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateBalance(ctx, 3, decimal.NewFromInt(100))

		require.NoError(t, err)
	})

	t.Run("Delete missing row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAccountRepository(db, logger.NewNoopLogger())

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "accounts" WHERE id = $1`)).
			WithArgs(8).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.Delete(ctx, 8)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}
