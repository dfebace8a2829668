package entity

import "github.com/shopspring/decimal"

// Account represents a bank account owned by a user
type Account struct {
	ID      uint64 `validate:"required"`
	Balance decimal.Decimal
	Type    string `validate:"required"`
	OwnerID uint64 `validate:"required"`
}

// ProjectedBalance returns the balance after applying amount
func (a *Account) ProjectedBalance(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}

// CanApply reports whether applying amount keeps the balance non-negative
func (a *Account) CanApply(amount decimal.Decimal) bool {
	return !a.ProjectedBalance(amount).IsNegative()
}
