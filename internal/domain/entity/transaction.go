package entity

import "github.com/shopspring/decimal"

// Transaction represents a credit (positive amount) or debit (negative amount) on an account
type Transaction struct {
	ID          uint64 `validate:"required"`
	Amount      decimal.Decimal
	Description string
	AccountID   uint64 `validate:"required"`
}

// IsDebit returns true if this transaction decreases the account balance
func (t *Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// IsCredit returns true if this transaction increases the account balance
func (t *Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}
