package persistence

import (
	"context"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
)

// UserRepository defines methods to interact with user data.
// Lookups that match no row return an empty record rather than an error.
type UserRepository interface {
	// GetAll retrieves every user, in store order
	//
	// Possible errors:
	// - ErrInternalServer: If the store cannot be reached or the query fails
	GetAll(ctx context.Context) ([]*entity.User, error)

	// GetByID retrieves a user by ID, joined with its role name
	//
	// Possible errors:
	// - ErrInternalServer: If the store cannot be reached or the query fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUniqueKey retrieves a user by one of the permitted unique lookup keys
	//
	// Possible errors:
	// - ErrBadRequest: If the field is not a permitted lookup key
	// - ErrInternalServer: If the store cannot be reached or the query fails
	GetByUniqueKey(ctx context.Context, field entity.UserField, value string) (*entity.User, error)

	// IsUsernameAvailable reports whether no user has exactly this username (case-sensitive)
	//
	// Possible errors:
	// - ErrInternalServer: If the store cannot be reached or the query fails
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)

	// Save persists a new user and returns it with the generated ID
	//
	// Possible errors:
	// - ErrInternalServer: If the store cannot be reached or the insert fails
	Save(ctx context.Context, user *entity.User) (*entity.User, error)

	// Update changes the username, password and names of an existing user
	//
	// Possible errors:
	// - ErrInternalServer: If the store cannot be reached or the update fails
	Update(ctx context.Context, user *entity.User) (bool, error)

	// Delete removes the user with the given ID
	//
	// Possible errors:
	// - ErrInternalServer: If the store cannot be reached or the delete fails
	Delete(ctx context.Context, id uint64) (bool, error)
}
