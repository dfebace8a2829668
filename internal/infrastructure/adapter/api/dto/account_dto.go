package dto

import (
	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest represents the API request for opening an account.
// Balance accepts a JSON number or string.
type CreateAccountRequest struct {
	Balance decimal.Decimal `json:"balance"`
	Type    string          `json:"type" binding:"required"`
	OwnerID uint64          `json:"ownerId" binding:"required"`
}

// ToEntity maps the request onto a new account
func (r CreateAccountRequest) ToEntity() *entity.Account {
	return &entity.Account{
		Balance: r.Balance,
		Type:    r.Type,
		OwnerID: r.OwnerID,
	}
}

// UpdateAccountRequest represents the API request for changing an account type
type UpdateAccountRequest struct {
	Type    string `json:"type" binding:"required"`
	OwnerID uint64 `json:"ownerId" binding:"required"`
}

// ToEntity maps the request onto the account with the given id
func (r UpdateAccountRequest) ToEntity(id uint64) *entity.Account {
	return &entity.Account{
		ID:      id,
		Type:    r.Type,
		OwnerID: r.OwnerID,
	}
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID      uint64 `json:"id"`
	Balance string `json:"balance"`
	Type    string `json:"type"`
	OwnerID uint64 `json:"ownerId"`
}

// NewAccountResponse maps an account entity to its response
func NewAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:      account.ID,
		Balance: entity.FormatAmount(account.Balance),
		Type:    account.Type,
		OwnerID: account.OwnerID,
	}
}

// NewAccountResponses maps a slice of account entities
func NewAccountResponses(accounts []*entity.Account) []AccountResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, NewAccountResponse(account))
	}
	return responses
}
