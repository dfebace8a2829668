package user

import (
	"context"
	"strconv"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	"github.com/amirhossein-jamali/bank-api/internal/domain/validator"
)

// GetUserByUniqueKey looks a user up by one of the fields in entity.UserFilterFields
func (u *UserUseCase) GetUserByUniqueKey(ctx context.Context, key string, value string) (*entity.User, error) {
	// Validate key
	if !validator.IsPropertyOf(key, entity.UserFilterFields()...) {
		return nil, errs.NewBadRequestError("Unsupported search key: " + key)
	}

	if entity.UserField(key) == entity.UserFieldID {
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, errs.NewBadRequestError(reasonInvalidUserID)
		}
		return u.GetUserByID(ctx, id)
	}

	// Validate value
	if !validator.IsValidStrings(value) {
		return nil, errs.NewBadRequestError("Search value must not be empty.")
	}

	user, err := u.userRepo.GetByUniqueKey(ctx, entity.UserField(key), value)
	if err != nil {
		u.logger.Error("Failed to search user", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return nil, err
	}

	if validator.IsEmptyObject(user) {
		return nil, errs.NewResourceNotFoundError("No user exists with provided " + key + ".")
	}

	return user.WithoutPassword(), nil
}

// AuthenticateUser returns the user whose username and password match
func (u *UserUseCase) AuthenticateUser(ctx context.Context, username, password string) (*entity.User, error) {
	// Validate credentials
	if !validator.IsValidStrings(username, password) {
		return nil, errs.NewBadRequestError("Username and password are required.")
	}

	user, err := u.userRepo.GetByUniqueKey(ctx, entity.UserFieldUsername, username)
	if err != nil {
		return nil, err
	}

	// Unknown users and wrong passwords are reported the same way
	if validator.IsEmptyObject(user) || !u.hasher.Compare(user.Password, password) {
		u.logger.Info("Authentication failed", map[string]any{
			"username": username,
		})
		return nil, errs.NewAuthenticationError("Invalid credentials.")
	}

	u.logger.Info("User authenticated", map[string]any{
		"userId": user.ID,
	})
	return user.WithoutPassword(), nil
}
