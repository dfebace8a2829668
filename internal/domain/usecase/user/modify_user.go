package user

import (
	"context"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	"github.com/amirhossein-jamali/bank-api/internal/domain/validator"
)

// UpdateUser replaces username, password and names of an existing user.
// The role is never changed here.
func (u *UserUseCase) UpdateUser(ctx context.Context, candidate *entity.User) (bool, error) {
	// Validate shape
	if !validator.IsValidObject(candidate, "Role") {
		return false, errs.NewBadRequestError("ID, username, password, first name and last name are required.")
	}

	existing, err := u.GetUserByID(ctx, candidate.ID)
	if err != nil {
		return false, err
	}

	// Only a changed username has to be free
	if existing.Username != candidate.Username && !u.CheckUsername(ctx, candidate.Username) {
		return false, errs.NewResourcePersistenceError(reasonUsernameTaken)
	}

	user := *candidate
	user.Role = existing.Role

	hashed, err := u.hasher.Hash(user.Password)
	if err != nil {
		return false, errs.NewInternalServerError("Failed to secure password.", err)
	}
	user.Password = hashed

	updated, err := u.userRepo.Update(ctx, &user)
	if err != nil {
		u.logger.Error("Failed to update user", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return false, err
	}

	u.logger.Info("User updated", map[string]any{
		"userId": user.ID,
	})
	return updated, nil
}

// DeleteUser removes an existing user. Only the ID of candidate is used.
func (u *UserUseCase) DeleteUser(ctx context.Context, candidate *entity.User) (bool, error) {
	// Validate userID
	if !validator.IsValidObject(candidate, "Username", "Password", "FirstName", "LastName", "Role") {
		return false, errs.NewBadRequestError(reasonInvalidUserID)
	}

	if _, err := u.GetUserByID(ctx, candidate.ID); err != nil {
		return false, err
	}

	deleted, err := u.userRepo.Delete(ctx, candidate.ID)
	if err != nil {
		u.logger.Error("Failed to delete user", map[string]any{
			"userId": candidate.ID,
			"error":  err.Error(),
		})
		return false, err
	}

	u.logger.Info("User deleted", map[string]any{
		"userId": candidate.ID,
	})
	return deleted, nil
}
