package transaction

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-api/internal/domain/validator"
)

// AddNewTransaction records a credit or debit unless it would drive the
// account balance below zero
func (t *TransactionUseCase) AddNewTransaction(ctx context.Context, candidate *entity.Transaction) (*entity.Transaction, error) {
	// Validate shape
	if !validator.IsValidObject(candidate, "ID") {
		return nil, errs.NewBadRequestError("Amount and account ID are required.")
	}

	// Validate amount
	if candidate.Amount.IsZero() {
		return nil, errs.NewBadRequestError("Amount must not be zero.")
	}
	if err := entity.ValidateAmount(candidate.Amount); err != nil {
		return nil, err
	}

	transaction := *candidate
	transaction.ID = 0

	var (
		saved *entity.Transaction
		err   error
	)
	switch t.mode {
	case usecase.BalanceCheckReadThenWrite:
		saved, err = t.addReadThenWrite(ctx, &transaction)
	default:
		saved, err = t.addAtomically(ctx, &transaction)
	}
	if err != nil {
		return nil, err
	}

	t.logger.Info("Transaction recorded", map[string]any{
		"transactionId": saved.ID,
		"accountId":     saved.AccountID,
		"amount":        entity.FormatAmount(saved.Amount),
		"mode":          string(t.mode),
	})
	return saved, nil
}

// addAtomically locks the account row, checks the projected balance, inserts
// the transaction and applies the amount in one database transaction
func (t *TransactionUseCase) addAtomically(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error) {
	var saved *entity.Transaction

	err := t.uow.Execute(ctx, func(txCtx context.Context) error {
		accountRepo := t.uow.GetAccountRepository(txCtx)
		transactionRepo := t.uow.GetTransactionRepository(txCtx)

		// Lock the account
		account, err := accountRepo.GetByIDForUpdate(txCtx, transaction.AccountID)
		if err != nil {
			return err
		}
		if validator.IsEmptyObject(account) {
			return errs.NewResourcePersistenceError(reasonAccountNotFound)
		}

		// Check funds
		if !account.CanApply(transaction.Amount) {
			t.logger.Info("Insufficient funds", map[string]any{
				"accountId": account.ID,
				"balance":   entity.FormatAmount(account.Balance),
				"amount":    entity.FormatAmount(transaction.Amount),
			})
			return errs.NewInsufficientFundsError("")
		}

		projected := account.ProjectedBalance(transaction.Amount)
		if !entity.WithinAmountLimit(projected) {
			return errs.NewBadRequestError("Resulting balance exceeds the supported range.")
		}

		saved, err = transactionRepo.Save(txCtx, transaction)
		if err != nil {
			return err
		}

		return accountRepo.UpdateBalance(txCtx, account.ID, projected)
	})
	if err != nil {
		if !errs.IsInsufficientFundsError(err) && !errors.Is(err, errs.ErrBadRequest) {
			t.logger.Error("Failed to record transaction", map[string]any{
				"accountId": transaction.AccountID,
				"error":     err.Error(),
			})
		}
		return nil, err
	}

	return saved, nil
}

// addReadThenWrite checks existence and balance with separate reads before
// inserting. The balance column is left untouched, and concurrent writers
// may both pass the check.
func (t *TransactionUseCase) addReadThenWrite(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error) {
	if !t.CheckAccountExists(ctx, transaction.AccountID) {
		return nil, errs.NewResourcePersistenceError(reasonAccountNotFound)
	}

	balance, err := t.CheckAccountBalance(ctx, transaction.AccountID)
	if err != nil {
		return nil, err
	}

	if balance.Add(transaction.Amount).IsNegative() {
		return nil, errs.NewInsufficientFundsError("")
	}

	saved, err := t.transactionRepo.Save(ctx, transaction)
	if err != nil {
		t.logger.Error("Failed to record transaction", map[string]any{
			"accountId": transaction.AccountID,
			"error":     err.Error(),
		})
		return nil, err
	}
	return saved, nil
}
