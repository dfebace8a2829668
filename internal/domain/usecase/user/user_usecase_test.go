package user

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/bank-api/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/bank-api/mocks/port/persistence"
	securitymocks "github.com/amirhossein-jamali/bank-api/mocks/port/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userMocks struct {
	repo   *persistencemocks.MockUserRepository
	hasher *securitymocks.MockPasswordHasher
	logger *coremocks.MockLogger
}

func newTestUserUseCase(t *testing.T) (*UserUseCase, userMocks) {
	m := userMocks{
		repo:   persistencemocks.NewMockUserRepository(t),
		hasher: securitymocks.NewMockPasswordHasher(t),
		logger: coremocks.NewMockLogger(t),
	}
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	uc := NewUserUseCase(m.repo, m.hasher, m.logger).(*UserUseCase)
	return uc, m
}

func storedUser() *entity.User {
	return &entity.User{
		ID:        1,
		Username:  "jdoe",
		Password:  "$2a$10$hash",
		FirstName: "John",
		LastName:  "Doe",
		Role:      entity.RoleUser,
	}
}

func TestGetAllUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("Passwords are stripped", func(t *testing.T) {
		uc, m := newTestUserUseCase(t)
		m.repo.EXPECT().GetAll(mock.Anything).Return([]*entity.User{storedUser(), {ID: 2, Username: "admin", Password: "secret"}}, nil).Once()

		users, err := uc.GetAllUsers(ctx)

		require.NoError(t, err)
		require.Len(t, users, 2)
		for _, user := range users {
			assert.Empty(t, user.Password)
		}
	})

	t.Run("Empty store is not found", func(t *testing.T) {
		uc, m := newTestUserUseCase(t)
		m.repo.EXPECT().GetAll(mock.Anything).Return([]*entity.User{}, nil).Once()

		users, err := uc.GetAllUsers(ctx)

		assert.Nil(t, users)
		assert.ErrorIs(t, err, errs.ErrResourceNotFound)
	})

	t.Run("Repository failure propagates", func(t *testing.T) {
		uc, m := newTestUserUseCase(t)
		dbErr := errs.NewInternalServerError("query failed", errors.New("connection refused"))
		m.repo.EXPECT().GetAll(mock.Anything).Return(nil, dbErr).Once()

		_, err := uc.GetAllUsers(ctx)

		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}

func TestGetUserByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		uc, m := newTestUserUseCase(t)
		m.repo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(storedUser(), nil).Once()

		user, err := uc.GetUserByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "jdoe", user.Username)
		assert.Empty(t, user.Password)
	})

	t.Run("Zero ID never reaches the store", func(t *testing.T) {
		uc, _ := newTestUserUseCase(t)

		user, err := uc.GetUserByID(ctx, 0)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrBadRequest)
	})

	t.Run("Empty record is not found", func(t *testing.T) {
		uc, m := newTestUserUseCase(t)
		m.repo.EXPECT().GetByID(mock.Anything, uint64(99)).Return(&entity.User{}, nil).Once()

		_, err := uc.GetUserByID(ctx, 99)

		assert.ErrorIs(t, err, errs.ErrResourceNotFound)
		assert.Equal(t, "No user exists with provided ID.", errs.Reason(err))
	})
}

func TestGetUserByUniqueKey(t *testing.T) {
	ctx := context.Background()

	t.Run("By username", func(t *testing.T) {
		uc, m := newTestUserUseCase(t)
		m.repo.EXPECT().GetByUniqueKey(mock.Anything, entity.UserFieldUsername, "jdoe").Return(storedUser(), nil).Once()

		user, err := uc.GetUserByUniqueKey(ctx, "username", "jdoe")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
		assert.Empty(t, user.Password)
	})

	t.Run("By id delegates to GetUserByID", func(t *testing.T) {
		uc, m := newTestUserUseCase(t)
		m.repo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(storedUser(), nil).Once()

		user, err := uc.GetUserByUniqueKey(ctx, "id", "1")

		require.NoError(t, err)
		assert.Equal(t, "jdoe", user.Username)
	})

	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{"Unknown key", "password", "secret"},
		{"Empty key", "", "jdoe"},
		{"Empty value", "username", ""},
		{"Non numeric id", "id", "abc"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newTestUserUseCase(t)

			_, err := uc.GetUserByUniqueKey(ctx, tc.key, tc.value)

			assert.ErrorIs(t, err, errs.ErrBadRequest)
		})
	}

	t.Run("No match", func(t *testing.T) {
		uc, m := newTestUserUseCase(t)
		m.repo.EXPECT().GetByUniqueKey(mock.Anything, entity.UserFieldUsername, "ghost").Return(&entity.User{}, nil).Once()

		_, err := uc.GetUserByUniqueKey(ctx, "username", "ghost")

		assert.ErrorIs(t, err, errs.ErrResourceNotFound)
	})
}

func TestAuthenticateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid credentials", func(t *testing.T) {
		uc, m := newTestUserUseCase(t)
		m.repo.EXPECT().GetByUniqueKey(mock.Anything, entity.UserFieldUsername, "jdoe").Return(storedUser(), nil).Once()
		m.hasher.EXPECT().Compare("$2a$10$hash", "password").Return(true).Once()

		user, err := uc.AuthenticateUser(ctx, "jdoe", "password")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
		assert.Empty(t, user.Password)
	})

	t.Run("Wrong password", func(t *testing.T) {
		uc, m := newTestUserUseCase(t)
		m.repo.EXPECT().GetByUniqueKey(mock.Anything, entity.UserFieldUsername, "jdoe").Return(storedUser(), nil).Once()
		m.hasher.EXPECT().Compare("$2a$10$hash", "wrong").Return(false).Once()

		_, err := uc.AuthenticateUser(ctx, "jdoe", "wrong")

		assert.ErrorIs(t, err, errs.ErrAuthentication)
	})

	t.Run("Unknown user", func(t *testing.T) {
		uc, m := newTestUserUseCase(t)
		m.repo.EXPECT().GetByUniqueKey(mock.Anything, entity.UserFieldUsername, "ghost").Return(&entity.User{}, nil).Once()

		_, err := uc.AuthenticateUser(ctx, "ghost", "password")

		assert.ErrorIs(t, err, errs.ErrAuthentication)
	})

	t.Run("Missing password", func(t *testing.T) {
		uc, _ := newTestUserUseCase(t)

		_, err := uc.AuthenticateUser(ctx, "jdoe", "")

		assert.ErrorIs(t, err, errs.ErrBadRequest)
	})
}

func TestCheckUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("Available", func(t *testing.T) {
		uc, m := newTestUserUseCase(t)
		m.repo.EXPECT().IsUsernameAvailable(mock.Anything, "fresh").Return(true, nil).Once()

		assert.True(t, uc.CheckUsername(ctx, "fresh"))
	})

	t.Run("Lookup failure counts as taken", func(t *testing.T) {
		uc, m := newTestUserUseCase(t)
		m.repo.EXPECT().IsUsernameAvailable(mock.Anything, "fresh").Return(false, errors.New("timeout")).Once()

		assert.False(t, uc.CheckUsername(ctx, "fresh"))
	})
}
