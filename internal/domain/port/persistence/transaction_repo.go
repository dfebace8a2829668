package persistence

import (
	"context"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
)

// TransactionRepository defines methods to interact with transaction data.
// Transactions are immutable once saved, so there is no Update.
type TransactionRepository interface {
	// GetAll retrieves every transaction, in store order
	//
	// Possible errors:
	// - ErrInternalServer: If the store cannot be reached or the query fails
	GetAll(ctx context.Context) ([]*entity.Transaction, error)

	// GetByID retrieves a transaction by ID; an absent row yields an empty record
	//
	// Possible errors:
	// - ErrInternalServer: If the store cannot be reached or the query fails
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// Save persists a new transaction and returns it with the generated ID
	//
	// Possible errors:
	// - ErrInternalServer: If the store cannot be reached or the insert fails
	Save(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error)

	// AccountExists reports whether an account with the given ID exists
	//
	// Possible errors:
	// - ErrInternalServer: If the store cannot be reached or the query fails
	AccountExists(ctx context.Context, accountID uint64) (bool, error)
}
