package user

import (
	"context"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	"github.com/amirhossein-jamali/bank-api/internal/domain/validator"
)

// AddNewUser registers candidate with the User role
func (u *UserUseCase) AddNewUser(ctx context.Context, candidate *entity.User) (*entity.User, error) {
	// Validate shape, ID and role are assigned here
	if !validator.IsValidObject(candidate, "ID", "Role") {
		return nil, errs.NewBadRequestError("Username, password, first name and last name are required.")
	}

	// Check if username is free
	if !u.CheckUsername(ctx, candidate.Username) {
		return nil, errs.NewResourcePersistenceError(reasonUsernameTaken)
	}

	user := *candidate
	user.ID = 0
	user.Role = entity.RoleUser

	hashed, err := u.hasher.Hash(user.Password)
	if err != nil {
		return nil, errs.NewInternalServerError("Failed to secure password.", err)
	}
	user.Password = hashed

	// Save the user to the database
	saved, err := u.userRepo.Save(ctx, &user)
	if err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"username": user.Username,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId":   saved.ID,
		"username": saved.Username,
	})

	return saved.WithoutPassword(), nil
}
