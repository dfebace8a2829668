package repository

import (
	"context"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/mapper"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	baseRepository
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) persistence.TransactionRepository {
	return &TransactionRepository{baseRepository: newBaseRepository(db, logger)}
}

// GetAll retrieves all transactions ordered by id
func (r *TransactionRepository) GetAll(ctx context.Context) ([]*entity.Transaction, error) {
	var rows []model.Transaction
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("getting transactions", err, nil)
	}
	return mapper.TransactionRowsToEntities(rows), nil
}

// GetByID retrieves a transaction by ID. An unknown id yields an empty transaction.
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var row model.Transaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).Find(&row).Error; err != nil {
		return nil, r.handleDatabaseError("getting transaction", err, map[string]any{"transaction_id": id})
	}
	return mapper.TransactionRowToEntity(&row), nil
}

// Save inserts a transaction
func (r *TransactionRepository) Save(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error) {
	r.logger.Debug("Saving transaction", map[string]any{
		"account_id": transaction.AccountID,
		"amount":     entity.FormatAmount(transaction.Amount),
	})

	row := mapper.TransactionEntityToModel(transaction)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, r.handleDatabaseError("saving transaction", err, map[string]any{"account_id": transaction.AccountID})
	}
	return mapper.TransactionRowToEntity(row), nil
}

// AccountExists reports whether an account with the given id exists
func (r *TransactionRepository) AccountExists(ctx context.Context, accountID uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Account{}).Where("id = ?", accountID).Count(&count).Error; err != nil {
		return false, r.handleDatabaseError("checking account", err, map[string]any{"account_id": accountID})
	}
	return count > 0, nil
}
