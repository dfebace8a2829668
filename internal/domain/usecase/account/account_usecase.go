package account

import (
	"context"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-api/internal/domain/validator"
)

const (
	reasonInvalidAccountID = "Invalid account ID."
	reasonAccountNotFound  = "No account exists with provided ID."
	reasonOwnerNotFound    = "No user exists with provided owner ID."
)

// AccountUseCase handles account-related business logic
type AccountUseCase struct {
	accountRepo persistence.AccountRepository
	logger      coreport.Logger
}

// NewAccountUseCase creates a new AccountUseCase
func NewAccountUseCase(accountRepo persistence.AccountRepository, logger coreport.Logger) usecase.AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// GetAllAccounts returns every account
func (a *AccountUseCase) GetAllAccounts(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := a.accountRepo.GetAll(ctx)
	if err != nil {
		a.logger.Error("Failed to get accounts", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	if validator.IsEmptyObject(accounts) {
		return nil, errs.NewResourceNotFoundError("No accounts exist.")
	}
	return accounts, nil
}

// GetAccountByID returns the account with the given ID
func (a *AccountUseCase) GetAccountByID(ctx context.Context, id uint64) (*entity.Account, error) {
	// Validate accountID
	if !validator.IsValidID(id) {
		return nil, errs.NewBadRequestError(reasonInvalidAccountID)
	}

	account, err := a.accountRepo.GetByID(ctx, id)
	if err != nil {
		a.logger.Error("Failed to get account", map[string]any{
			"accountId": id,
			"error":     err.Error(),
		})
		return nil, err
	}

	if validator.IsEmptyObject(account) {
		return nil, errs.NewResourceNotFoundError(reasonAccountNotFound)
	}
	return account, nil
}

// CheckOwnerExists reports whether a user with ownerID exists
func (a *AccountUseCase) CheckOwnerExists(ctx context.Context, ownerID uint64) bool {
	exists, err := a.accountRepo.OwnerExists(ctx, ownerID)
	if err != nil {
		a.logger.Warn("Owner existence check failed", map[string]any{
			"ownerId": ownerID,
			"error":   err.Error(),
		})
		return false
	}
	return exists
}

// AddNewAccount opens an account for an existing owner.
// A balance supplied by the caller is stored as the opening balance.
func (a *AccountUseCase) AddNewAccount(ctx context.Context, candidate *entity.Account) (*entity.Account, error) {
	// Validate shape
	if !validator.IsValidObject(candidate, "ID") {
		return nil, errs.NewBadRequestError("Account type and owner ID are required.")
	}

	if candidate.Balance.IsNegative() {
		return nil, errs.NewBadRequestError("Opening balance must not be negative.")
	}
	if err := entity.ValidateAmount(candidate.Balance); err != nil {
		return nil, err
	}

	// Check if owner exists
	if !a.CheckOwnerExists(ctx, candidate.OwnerID) {
		return nil, errs.NewResourcePersistenceError(reasonOwnerNotFound)
	}

	account := *candidate
	account.ID = 0

	saved, err := a.accountRepo.Save(ctx, &account)
	if err != nil {
		a.logger.Error("Failed to create account", map[string]any{
			"ownerId": account.OwnerID,
			"error":   err.Error(),
		})
		return nil, err
	}

	a.logger.Info("Account created", map[string]any{
		"accountId": saved.ID,
		"ownerId":   saved.OwnerID,
		"balance":   entity.FormatAmount(saved.Balance),
	})
	return saved, nil
}

// UpdateAccount changes the type of an existing account. Balance and owner are kept;
// an owner ID other than the stored one is rejected.
func (a *AccountUseCase) UpdateAccount(ctx context.Context, candidate *entity.Account) (bool, error) {
	// Validate shape
	if !validator.IsValidObject(candidate) {
		return false, errs.NewBadRequestError("Account ID, type and owner ID are required.")
	}

	existing, err := a.GetAccountByID(ctx, candidate.ID)
	if err != nil {
		return false, err
	}
	if existing.OwnerID != candidate.OwnerID {
		return false, errs.NewBadRequestError("Account owner cannot be changed.")
	}

	updated, err := a.accountRepo.Update(ctx, candidate)
	if err != nil {
		a.logger.Error("Failed to update account", map[string]any{
			"accountId": candidate.ID,
			"error":     err.Error(),
		})
		return false, err
	}

	a.logger.Info("Account updated", map[string]any{
		"accountId": candidate.ID,
		"type":      candidate.Type,
	})
	return updated, nil
}

// DeleteAccount removes an existing account. Only the ID of candidate is used.
func (a *AccountUseCase) DeleteAccount(ctx context.Context, candidate *entity.Account) (bool, error) {
	if !validator.IsValidObject(candidate, "Type", "OwnerID") {
		return false, errs.NewBadRequestError(reasonInvalidAccountID)
	}

	if _, err := a.GetAccountByID(ctx, candidate.ID); err != nil {
		return false, err
	}

	deleted, err := a.accountRepo.Delete(ctx, candidate.ID)
	if err != nil {
		a.logger.Error("Failed to delete account", map[string]any{
			"accountId": candidate.ID,
			"error":     err.Error(),
		})
		return false, err
	}

	a.logger.Info("Account deleted", map[string]any{
		"accountId": candidate.ID,
	})
	return deleted, nil
}
