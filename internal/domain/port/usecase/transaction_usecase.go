package usecase

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// BalanceCheckMode selects how a new transaction is checked against the account balance
type BalanceCheckMode string

const (
	// BalanceCheckReadThenWrite reads the balance and inserts in separate statements.
	// The account balance is not changed and concurrent writers can overdraw the account.
	BalanceCheckReadThenWrite BalanceCheckMode = "read-then-write"

	// BalanceCheckAtomic locks the account row, checks, inserts and applies the
	// amount to the balance in a single database transaction
	BalanceCheckAtomic BalanceCheckMode = "atomic"
)

// ParseBalanceCheckMode converts a configuration value to a BalanceCheckMode
func ParseBalanceCheckMode(value string) (BalanceCheckMode, error) {
	switch BalanceCheckMode(value) {
	case BalanceCheckReadThenWrite, BalanceCheckAtomic:
		return BalanceCheckMode(value), nil
	case "":
		return BalanceCheckAtomic, nil
	default:
		return "", fmt.Errorf("invalid balance check mode: %s, must be one of: %s, %s",
			value, BalanceCheckReadThenWrite, BalanceCheckAtomic)
	}
}

// TransactionUseCase defines methods for transaction-related business operations
type TransactionUseCase interface {
	// GetAllTransactions returns all transactions; an empty store is a not found error
	GetAllTransactions(ctx context.Context) ([]*entity.Transaction, error)

	// GetTransactionByID returns the transaction with the given ID
	GetTransactionByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// AddNewTransaction admits a transaction unless it would drive the balance below zero
	AddNewTransaction(ctx context.Context, candidate *entity.Transaction) (*entity.Transaction, error)

	// UpdateTransaction is refused by policy
	UpdateTransaction(ctx context.Context, candidate *entity.Transaction) (bool, error)

	// CheckAccountExists reports whether the account exists; lookup failures count as absent
	CheckAccountExists(ctx context.Context, accountID uint64) bool

	// CheckAccountBalance returns the current balance of an account
	CheckAccountBalance(ctx context.Context, accountID uint64) (decimal.Decimal, error)
}
