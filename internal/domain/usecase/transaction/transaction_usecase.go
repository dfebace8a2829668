package transaction

import (
	"context"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-api/internal/domain/validator"
	"github.com/shopspring/decimal"
)

const (
	reasonInvalidTransactionID = "Invalid transaction ID."
	reasonTransactionNotFound  = "No transaction exists with provided ID."
	reasonAccountNotFound      = "No account exists with provided account ID."
)

// TransactionUseCase handles transaction-related business logic
type TransactionUseCase struct {
	transactionRepo persistence.TransactionRepository
	accountRepo     persistence.AccountRepository
	uow             persistence.UnitOfWork
	mode            usecase.BalanceCheckMode
	logger          coreport.Logger
}

// NewTransactionUseCase creates a new TransactionUseCase.
// An empty mode selects usecase.BalanceCheckAtomic.
func NewTransactionUseCase(
	transactionRepo persistence.TransactionRepository,
	accountRepo persistence.AccountRepository,
	uow persistence.UnitOfWork,
	mode usecase.BalanceCheckMode,
	logger coreport.Logger,
) usecase.TransactionUseCase {
	if mode == "" {
		mode = usecase.BalanceCheckAtomic
	}

	return &TransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		uow:             uow,
		mode:            mode,
		logger:          logger,
	}
}

// GetAllTransactions returns every transaction
func (t *TransactionUseCase) GetAllTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	transactions, err := t.transactionRepo.GetAll(ctx)
	if err != nil {
		t.logger.Error("Failed to get transactions", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	if validator.IsEmptyObject(transactions) {
		return nil, errs.NewResourceNotFoundError("No transactions exist.")
	}
	return transactions, nil
}

// GetTransactionByID returns the transaction with the given ID
func (t *TransactionUseCase) GetTransactionByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	// Validate transactionID
	if !validator.IsValidID(id) {
		return nil, errs.NewBadRequestError(reasonInvalidTransactionID)
	}

	transaction, err := t.transactionRepo.GetByID(ctx, id)
	if err != nil {
		t.logger.Error("Failed to get transaction", map[string]any{
			"transactionId": id,
			"error":         err.Error(),
		})
		return nil, err
	}

	if validator.IsEmptyObject(transaction) {
		return nil, errs.NewResourceNotFoundError(reasonTransactionNotFound)
	}
	return transaction, nil
}

// UpdateTransaction always fails: recorded transactions are immutable
func (t *TransactionUseCase) UpdateTransaction(_ context.Context, _ *entity.Transaction) (bool, error) {
	return false, errs.NewOperationNotSupportedError("Transactions cannot be modified once recorded.")
}

// CheckAccountExists reports whether the account exists
func (t *TransactionUseCase) CheckAccountExists(ctx context.Context, accountID uint64) bool {
	exists, err := t.transactionRepo.AccountExists(ctx, accountID)
	if err != nil {
		t.logger.Warn("Account existence check failed", map[string]any{
			"accountId": accountID,
			"error":     err.Error(),
		})
		return false
	}
	return exists
}

// CheckAccountBalance returns the current balance of an account
func (t *TransactionUseCase) CheckAccountBalance(ctx context.Context, accountID uint64) (decimal.Decimal, error) {
	if !validator.IsValidID(accountID) {
		return decimal.Zero, errs.NewBadRequestError("Invalid account ID.")
	}

	account, err := t.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	if validator.IsEmptyObject(account) {
		return decimal.Zero, errs.NewResourceNotFoundError(reasonAccountNotFound)
	}
	return account.Balance, nil
}
