package security

import (
	"crypto/subtle"
	"fmt"

	"github.com/amirhossein-jamali/bank-api/internal/domain/port/security"
	"golang.org/x/crypto/bcrypt"
)

// Password hashing modes accepted by NewPasswordHasher
const (
	HashingBcrypt    = "bcrypt"
	HashingPlaintext = "plaintext"
)

// BcryptHasher stores passwords as bcrypt hashes
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt hasher; a cost outside bcrypt's range uses the default cost
func NewBcryptHasher(cost int) security.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of password
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare reports whether password matches the stored hash
func (h *BcryptHasher) Compare(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// PlaintextHasher stores passwords unchanged. Kept for databases populated
// before hashing was introduced.
type PlaintextHasher struct{}

// NewPlaintextHasher creates a plaintext hasher
func NewPlaintextHasher() security.PasswordHasher {
	return &PlaintextHasher{}
}

// Hash returns password unchanged
func (h *PlaintextHasher) Hash(password string) (string, error) {
	return password, nil
}

// Compare reports whether password equals the stored value exactly
func (h *PlaintextHasher) Compare(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// NewPasswordHasher returns the hasher for mode; "" means bcrypt
func NewPasswordHasher(mode string, bcryptCost int) (security.PasswordHasher, error) {
	switch mode {
	case "", HashingBcrypt:
		return NewBcryptHasher(bcryptCost), nil
	case HashingPlaintext:
		return NewPlaintextHasher(), nil
	default:
		return nil, fmt.Errorf("unsupported password hashing mode: %s", mode)
	}
}
