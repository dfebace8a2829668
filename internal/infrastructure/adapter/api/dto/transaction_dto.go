package dto

import (
	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TransactionRequest represents the API request for recording a transaction.
// A negative amount is a debit.
type TransactionRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"max=255"`
	AccountID   uint64          `json:"accountId" binding:"required"`
}

// ToEntity maps the request onto a transaction with the given id
func (r TransactionRequest) ToEntity(id uint64) *entity.Transaction {
	return &entity.Transaction{
		ID:          id,
		Amount:      r.Amount,
		Description: r.Description,
		AccountID:   r.AccountID,
	}
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID          uint64 `json:"id"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	AccountID   uint64 `json:"accountId"`
}

// NewTransactionResponse maps a transaction entity to its response
func NewTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID,
		Amount:      entity.FormatAmount(transaction.Amount),
		Description: transaction.Description,
		AccountID:   transaction.AccountID,
	}
}

// NewTransactionResponses maps a slice of transaction entities
func NewTransactionResponses(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, NewTransactionResponse(transaction))
	}
	return responses
}
