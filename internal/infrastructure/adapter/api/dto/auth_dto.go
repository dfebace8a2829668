package dto

import (
	"time"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/security"
)

// LoginRequest represents the API request for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PrincipalResponse is returned on login
type PrincipalResponse struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewPrincipalResponse combines the principal with its issued token
func NewPrincipalResponse(principal *entity.Principal, token *security.IssuedToken) PrincipalResponse {
	return PrincipalResponse{
		ID:        principal.ID,
		Username:  principal.Username,
		Role:      principal.Role,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
	}
}
