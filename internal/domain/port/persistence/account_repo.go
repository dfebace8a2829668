package persistence

import (
	"context"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// AccountRepository defines methods to interact with account data.
// Every store failure is reported as ErrInternalServer.
type AccountRepository interface {
	// GetAll retrieves every account, in store order
	GetAll(ctx context.Context) ([]*entity.Account, error)

	// GetByID retrieves an account by ID; an absent row yields an empty record
	GetByID(ctx context.Context, id uint64) (*entity.Account, error)

	// GetByIDForUpdate retrieves an account and locks its row until the surrounding
	// transaction ends. Only meaningful inside a unit of work.
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Account, error)

	// Save persists a new account and returns it with the generated ID
	Save(ctx context.Context, account *entity.Account) (*entity.Account, error)

	// Update changes the account type
	Update(ctx context.Context, account *entity.Account) (bool, error)

	// UpdateBalance overwrites the balance of an account
	UpdateBalance(ctx context.Context, id uint64, balance decimal.Decimal) error

	// Delete removes the account with the given ID
	Delete(ctx context.Context, id uint64) (bool, error)

	// OwnerExists reports whether a user with the given ID exists
	OwnerExists(ctx context.Context, ownerID uint64) (bool, error)
}
