package repository

import (
	"context"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/mapper"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository implements AccountRepository interface using GORM
type AccountRepository struct {
	baseRepository
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, logger coreport.Logger) persistence.AccountRepository {
	return &AccountRepository{baseRepository: newBaseRepository(db, logger)}
}

// GetAll retrieves all accounts ordered by id
func (r *AccountRepository) GetAll(ctx context.Context) ([]*entity.Account, error) {
	var rows []model.Account
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("getting accounts", err, nil)
	}
	return mapper.AccountRowsToEntities(rows), nil
}

// GetByID retrieves an account by ID. An unknown id yields an empty account.
func (r *AccountRepository) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	var row model.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).Find(&row).Error; err != nil {
		return nil, r.handleDatabaseError("getting account", err, map[string]any{"account_id": id})
	}
	return mapper.AccountRowToEntity(&row), nil
}

// GetByIDForUpdate retrieves an account and locks its row until the surrounding
// transaction ends
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Account, error) {
	r.logger.Debug("Locking account", map[string]any{
		"account_id": id,
	})

	var row model.Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		Find(&row).Error
	if err != nil {
		return nil, r.handleDatabaseError("locking account", err, map[string]any{"account_id": id})
	}
	return mapper.AccountRowToEntity(&row), nil
}

// Save inserts an account
func (r *AccountRepository) Save(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	row := mapper.AccountEntityToModel(account)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, r.handleDatabaseError("creating account", err, map[string]any{"owner_id": account.OwnerID})
	}

	r.logger.Info("Account created successfully", map[string]any{
		"account_id": row.ID,
		"owner_id":   row.OwnerID,
	})
	return mapper.AccountRowToEntity(row), nil
}

// Update changes the account type. Balance and owner are left untouched.
func (r *AccountRepository) Update(ctx context.Context, account *entity.Account) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", account.ID).
		Update("account_type", account.Type)

	if result.Error != nil {
		return false, r.handleDatabaseError("updating account", result.Error, map[string]any{"account_id": account.ID})
	}
	return result.RowsAffected > 0, nil
}

// UpdateBalance sets the balance of an account
func (r *AccountRepository) UpdateBalance(ctx context.Context, id uint64, balance decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", id).
		Update("balance", balance)

	if result.Error != nil {
		return r.handleDatabaseError("updating balance", result.Error, map[string]any{"account_id": id})
	}

	r.logger.Debug("Account balance updated", map[string]any{
		"account_id": id,
		"balance":    entity.FormatAmount(balance),
	})
	return nil
}

// Delete removes an account by ID
func (r *AccountRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Account{})
	if result.Error != nil {
		return false, r.handleDatabaseError("deleting account", result.Error, map[string]any{"account_id": id})
	}
	return result.RowsAffected > 0, nil
}

// OwnerExists reports whether a user with the given id exists
func (r *AccountRepository) OwnerExists(ctx context.Context, ownerID uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", ownerID).Count(&count).Error; err != nil {
		return false, r.handleDatabaseError("checking owner", err, map[string]any{"owner_id": ownerID})
	}
	return count > 0, nil
}
