package repository

import (
	"context"
	"strconv"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/mapper"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const userColumns = "u.id, u.username, u.password, u.first_name, u.last_name, r.name AS role_name"

// userKeyColumns is the closed set of columns a user can be looked up by
var userKeyColumns = map[entity.UserField]string{
	entity.UserFieldID:       "u.id",
	entity.UserFieldUsername: "u.username",
}

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	baseRepository
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) persistence.UserRepository {
	return &UserRepository{baseRepository: newBaseRepository(db, logger)}
}

// userQuery selects users joined with their role name
func (r *UserRepository) userQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("users u").
		Select(userColumns).
		Joins("JOIN roles r ON r.id = u.role_id")
}

// GetAll retrieves all users ordered by id
func (r *UserRepository) GetAll(ctx context.Context) ([]*entity.User, error) {
	var rows []model.UserRow
	if err := r.userQuery(ctx).Order("u.id").Scan(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("getting users", err, nil)
	}
	return mapper.UserRowsToEntities(rows), nil
}

// GetByID retrieves a user by ID. An unknown id yields an empty user.
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id,
	})

	var row model.UserRow
	if err := r.userQuery(ctx).Where("u.id = ?", id).Scan(&row).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, map[string]any{"user_id": id})
	}
	return mapper.UserRowToEntity(&row), nil
}

// GetByUniqueKey retrieves a user by one of the unique lookup keys
func (r *UserRepository) GetByUniqueKey(ctx context.Context, field entity.UserField, value string) (*entity.User, error) {
	column, ok := userKeyColumns[field]
	if !ok {
		return nil, errs.NewBadRequestError("Unsupported search key: " + string(field))
	}

	var arg any = value
	if field == entity.UserFieldID {
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, errs.NewBadRequestError("Invalid user ID.")
		}
		arg = id
	}

	var row model.UserRow
	if err := r.userQuery(ctx).Where(column+" = ?", arg).Limit(1).Scan(&row).Error; err != nil {
		return nil, r.handleDatabaseError("searching user", err, map[string]any{"field": string(field)})
	}
	return mapper.UserRowToEntity(&row), nil
}

// IsUsernameAvailable reports whether no user has exactly this username
func (r *UserRepository) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking username", err, map[string]any{"username": username})
	}
	return count == 0, nil
}

// Save inserts a user, resolving its role name to a role id
func (r *UserRepository) Save(ctx context.Context, user *entity.User) (*entity.User, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Where("name = ?", user.Role).Find(&role).Error; err != nil {
		return nil, r.handleDatabaseError("resolving role", err, map[string]any{"role": user.Role})
	}
	if role.ID == 0 {
		return nil, errs.NewResourcePersistenceError("Unknown role: " + user.Role)
	}

	row := mapper.UserEntityToModel(user, role.ID)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, r.handleDatabaseError("creating user", err, map[string]any{"username": user.Username})
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id": row.ID,
	})

	saved := *user
	saved.ID = row.ID
	return &saved, nil
}

// Update replaces username, password and names of a user
func (r *UserRepository) Update(ctx context.Context, user *entity.User) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"username":   user.Username,
			"password":   user.Password,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		})

	if result.Error != nil {
		return false, r.handleDatabaseError("updating user", result.Error, map[string]any{"user_id": user.ID})
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"user_id": user.ID,
		})
	}
	return result.RowsAffected > 0, nil
}

// Delete removes a user by ID
func (r *UserRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	if result.Error != nil {
		return false, r.handleDatabaseError("deleting user", result.Error, map[string]any{"user_id": id})
	}
	return result.RowsAffected > 0, nil
}
