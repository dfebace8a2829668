package security

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
)

// IssuedToken is a signed access token
type IssuedToken struct {
	Token     string
	ID        string
	ExpiresAt time.Time
}

// TokenClaims is what a verified token asserts
type TokenClaims struct {
	ID        string
	Principal entity.Principal
	ExpiresAt time.Time
}

// TokenIssuer signs and verifies access tokens
type TokenIssuer interface {
	// Issue signs a token for the principal
	Issue(principal *entity.Principal) (*IssuedToken, error)
	// Parse verifies signature, issuer and expiry and returns the claims
	//
	// Possible errors:
	// - ErrAuthentication: If the token is malformed, forged or expired
	Parse(token string) (*TokenClaims, error)
}

// RevocationStore remembers logged out tokens until they expire
type RevocationStore interface {
	// Revoke marks the token id as revoked until expiresAt
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	// IsRevoked reports whether the token id was revoked
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
