package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Direction(t *testing.T) {
	testCases := []struct {
		name     string
		amount   string
		isDebit  bool
		isCredit bool
	}{
		{"Rent", "-800", true, false},
		{"Deposit", "640", false, true},
		{"Zero", "0", false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx := &Transaction{Amount: decimal.RequireFromString(tc.amount)}
			assert.Equal(t, tc.isDebit, tx.IsDebit())
			assert.Equal(t, tc.isCredit, tx.IsCredit())
		})
	}
}

func TestAccount_CanApply(t *testing.T) {
	account := &Account{ID: 1, Balance: decimal.NewFromInt(400), Type: "Checking", OwnerID: 1}

	testCases := []struct {
		amount    string
		projected string
		allowed   bool
	}{
		{"-800", "-400.00", false},
		{"-300", "100.00", true},
		{"-400", "0.00", true},
		{"25.50", "425.50", true},
	}

	for _, tc := range testCases {
		t.Run(tc.amount, func(t *testing.T) {
			amount := decimal.RequireFromString(tc.amount)
			assert.Equal(t, tc.projected, FormatAmount(account.ProjectedBalance(amount)))
			assert.Equal(t, tc.allowed, account.CanApply(amount))
		})
	}
}
