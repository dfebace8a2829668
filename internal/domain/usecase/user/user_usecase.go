package user

import (
	"context"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/security"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-api/internal/domain/validator"
)

// Reasons reported to callers
const (
	reasonInvalidUserID = "Invalid user ID."
	reasonUserNotFound  = "No user exists with provided ID."
	reasonUsernameTaken = "This username is already taken. Please pick another."
)

// UserUseCase handles user-related business logic
type UserUseCase struct {
	userRepo persistence.UserRepository
	hasher   security.PasswordHasher
	logger   coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	hasher security.PasswordHasher,
	logger coreport.Logger,
) usecase.UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// GetAllUsers returns every user without passwords
func (u *UserUseCase) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := u.userRepo.GetAll(ctx)
	if err != nil {
		u.logger.Error("Failed to get users", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	if validator.IsEmptyObject(users) {
		return nil, errs.NewResourceNotFoundError("No users exist.")
	}

	sanitized := make([]*entity.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.WithoutPassword())
	}
	return sanitized, nil
}

// GetUserByID returns the user with the given ID without its password
func (u *UserUseCase) GetUserByID(ctx context.Context, id uint64) (*entity.User, error) {
	// Validate userID
	if !validator.IsValidID(id) {
		return nil, errs.NewBadRequestError(reasonInvalidUserID)
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		u.logger.Error("Failed to get user", map[string]any{
			"userId": id,
			"error":  err.Error(),
		})
		return nil, err
	}

	if validator.IsEmptyObject(user) {
		return nil, errs.NewResourceNotFoundError(reasonUserNotFound)
	}

	return user.WithoutPassword(), nil
}

// CheckUsername reports whether username is free to use
func (u *UserUseCase) CheckUsername(ctx context.Context, username string) bool {
	available, err := u.userRepo.IsUsernameAvailable(ctx, username)
	if err != nil {
		u.logger.Warn("Username availability check failed", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return false
	}
	return available
}
