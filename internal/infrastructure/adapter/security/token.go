package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/security"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the JWT payload
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 tokens carrying the principal
type JWTIssuer struct {
	secret       []byte
	issuer       string
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTIssuer creates a token issuer. The secret must not be empty.
func NewJWTIssuer(secret, issuer string, ttl time.Duration, timeProvider coreport.TimeProvider) (security.TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got: %s", ttl)
	}
	return &JWTIssuer{
		secret:       []byte(secret),
		issuer:       issuer,
		ttl:          ttl,
		timeProvider: timeProvider,
	}, nil
}

// Issue signs a token for principal with a fresh id
func (i *JWTIssuer) Issue(principal *entity.Principal) (*security.IssuedToken, error) {
	now := i.timeProvider.Now()
	expiresAt := now.Add(i.ttl)
	tokenID := uuid.NewString()

	claims := Claims{
		Username: principal.Username,
		Role:     principal.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   strconv.FormatUint(principal.ID, 10),
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &security.IssuedToken{
		Token:     signed,
		ID:        tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

// Parse verifies token and returns its claims
func (i *JWTIssuer) Parse(token string) (*security.TokenClaims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.timeProvider.Now),
	)
	if err != nil || !parsed.Valid {
		return nil, errs.NewAuthenticationError("Invalid or expired token.")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 || claims.ID == "" {
		return nil, errs.NewAuthenticationError("Invalid or expired token.")
	}

	return &security.TokenClaims{
		ID: claims.ID,
		Principal: entity.Principal{
			ID:       userID,
			Username: claims.Username,
			Role:     claims.Role,
		},
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
