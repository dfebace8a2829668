package usecase

import (
	"context"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
)

// UserUseCase defines methods for user-related business operations.
// Every user returned has its password stripped.
type UserUseCase interface {
	// GetAllUsers returns all users; an empty store is a not found error
	GetAllUsers(ctx context.Context) ([]*entity.User, error)

	// GetUserByID returns the user with the given ID
	GetUserByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetUserByUniqueKey returns the user matching a permitted unique key such as "username"
	GetUserByUniqueKey(ctx context.Context, key string, value string) (*entity.User, error)

	// AuthenticateUser returns the user whose credentials match
	AuthenticateUser(ctx context.Context, username, password string) (*entity.User, error)

	// AddNewUser registers a user with the "User" role
	AddNewUser(ctx context.Context, candidate *entity.User) (*entity.User, error)

	// UpdateUser changes username, password and names of an existing user
	UpdateUser(ctx context.Context, candidate *entity.User) (bool, error)

	// DeleteUser removes an existing user
	DeleteUser(ctx context.Context, candidate *entity.User) (bool, error)

	// CheckUsername reports whether a username is free; lookup failures count as taken
	CheckUsername(ctx context.Context, username string) bool
}
