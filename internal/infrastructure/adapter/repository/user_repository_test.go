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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "username", "password", "first_name", "last_name", "role_name"}

func TestUserRepositoryGetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Rows are joined with role names", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(regexp.QuoteMeta("FROM users u JOIN roles r ON r.id = u.role_id")).
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow(1, "admin", "secret", "Ada", "Min", "Admin").
				AddRow(2, "jdoe", "password", "John", "Doe", "User"))

		users, err := repo.GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, entity.RoleAdmin, users[0].Role)
		assert.Equal(t, "jdoe", users[1].Username)
	})

	t.Run("No rows is an empty slice", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery("FROM users u").WillReturnRows(sqlmock.NewRows(userRowColumns))

		users, err := repo.GetAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("Store failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery("FROM users u").WillReturnError(errors.New("connection refused"))

		_, err := repo.GetAll(ctx)

		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}

func TestUserRepositoryGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(regexp.QuoteMeta("WHERE u.id = $1")).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "admin", "secret", "Ada", "Min", "Admin"))

		user, err := repo.GetByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "admin", user.Username)
		assert.Equal(t, "secret", user.Password)
	})

	t.Run("Unknown id is an empty record", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(regexp.QuoteMeta("WHERE u.id = $1")).
			WithArgs(42).
			WillReturnRows(sqlmock.NewRows(userRowColumns))

		user, err := repo.GetByID(ctx, 42)

		require.NoError(t, err)
		assert.True(t, validator.IsEmptyObject(user))
	})
}

func TestUserRepositoryGetByUniqueKey(t *testing.T) {
	ctx := context.Background()

	t.Run("Username", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(regexp.QuoteMeta("WHERE u.username = $1")).
			WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(2, "jdoe", "password", "John", "Doe", "User"))

		user, err := repo.GetByUniqueKey(ctx, entity.UserFieldUsername, "jdoe")

		require.NoError(t, err)
		assert.Equal(t, uint64(2), user.ID)
	})

	t.Run("Unsupported key never reaches the store", func(t *testing.T) {
		db, _ := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		_, err := repo.GetByUniqueKey(ctx, entity.UserField("password"), "secret")

		assert.ErrorIs(t, err, errs.ErrBadRequest)
	})
}

func TestUserRepositoryIsUsernameAvailable(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		count     int
		available bool
	}{
		{"Free", 0, true},
		{"Taken", 1, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db, logger.NewNoopLogger())

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "users" WHERE username = $1`)).
				WithArgs("jdoe").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tc.count))

			available, err := repo.IsUsernameAvailable(ctx, "jdoe")

			require.NoError(t, err)
			assert.Equal(t, tc.available, available)
		})
	}
}

func TestUserRepositorySave(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{Username: "jdoe", Password: "hashed", FirstName: "John", LastName: "Doe", Role: entity.RoleUser}

	t.Run("Role is resolved and id assigned", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "roles" WHERE name = $1`)).
			WithArgs(entity.RoleUser).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, entity.RoleUser))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		saved, err := repo.Save(ctx, user)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), saved.ID)
		assert.Equal(t, entity.RoleUser, saved.Role)
	})

	t.Run("Unknown role", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(regexp.QuoteMeta(`FROM "roles"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		_, err := repo.Save(ctx, user)

		assert.ErrorIs(t, err, errs.ErrResourcePersistence)
	})
}

func TestUserRepositoryUpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Update", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.Update(ctx, &entity.User{ID: 1, Username: "jdoe", Password: "x", FirstName: "J", LastName: "D"})

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Update missing row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.Update(ctx, &entity.User{ID: 9, Username: "jdoe", Password: "x", FirstName: "J", LastName: "D"})

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Delete", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "users" WHERE id = $1`)).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.Delete(ctx, 1)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Delete user that still owns accounts", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "users"`)).
			WillReturnError(errors.New(`ERROR: update or delete on table "users" violates foreign key constraint (SQLSTATE 23503)`))

		_, err := repo.Delete(ctx, 1)

		assert.ErrorIs(t, err, errs.ErrResourcePersistence)
	})
}
