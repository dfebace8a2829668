package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// MaxIntegerDigits is the number of integer digits a numeric(14,2) column holds
const MaxIntegerDigits = 12

// amountLimit is the exclusive bound on the magnitude of any stored amount
var amountLimit = decimal.New(1, MaxIntegerDigits)

// ParseAmount parses a signed money amount such as "-800", "640.5" or "12.34"
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, errs.NewBadRequestError("amount is empty")
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, errs.NewBadRequestError(fmt.Sprintf("invalid amount format: %s", amount))
	}

	if err := ValidateAmount(value); err != nil {
		return decimal.Zero, err
	}

	return value, nil
}

// ValidateAmount checks that an amount has no more than MaxDecimalPlaces
// decimal places and fits the store's money columns
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.Equal(amount.Truncate(MaxDecimalPlaces)) {
		return errs.NewBadRequestError(fmt.Sprintf("maximum %d decimal places allowed", MaxDecimalPlaces))
	}
	if !WithinAmountLimit(amount) {
		return errs.NewBadRequestError(fmt.Sprintf("amount must be less than %s in magnitude", amountLimit.String()))
	}
	return nil
}

// WithinAmountLimit reports whether the magnitude of amount is below 10^MaxIntegerDigits
func WithinAmountLimit(amount decimal.Decimal) bool {
	return amount.Abs().LessThan(amountLimit)
}

// FormatAmount renders an amount with exactly two decimal places
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}
