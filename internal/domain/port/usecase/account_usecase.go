package usecase

import (
	"context"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
)

// AccountUseCase defines methods for account-related business operations
type AccountUseCase interface {
	// GetAllAccounts returns all accounts; an empty store is a not found error
	GetAllAccounts(ctx context.Context) ([]*entity.Account, error)

	// GetAccountByID returns the account with the given ID
	GetAccountByID(ctx context.Context, id uint64) (*entity.Account, error)

	// AddNewAccount opens an account for an existing owner
	AddNewAccount(ctx context.Context, candidate *entity.Account) (*entity.Account, error)

	// UpdateAccount changes the type of an existing account
	UpdateAccount(ctx context.Context, candidate *entity.Account) (bool, error)

	// DeleteAccount removes an existing account
	DeleteAccount(ctx context.Context, candidate *entity.Account) (bool, error)

	// CheckOwnerExists reports whether the owner exists; lookup failures count as absent
	CheckOwnerExists(ctx context.Context, ownerID uint64) bool
}
