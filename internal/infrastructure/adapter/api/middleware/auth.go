package middleware

import (
	"strings"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/security"
	"github.com/gin-gonic/gin"
)

// Context keys set by the authentication middlewares
const (
	principalKey   = "principal"
	tokenClaimsKey = "tokenClaims"
)

// Authenticate middleware verifies a bearer token when one is present and
// stores its principal. Requests without a token pass through anonymously.
func Authenticate(
	issuer security.TokenIssuer,
	revocations security.RevocationStore,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
) gin.HandlerFunc {
	return authenticate(issuer, revocations, logger, timeProvider, true)
}

// IdentifyIfValid middleware stores the principal of a valid bearer token.
// Unusable tokens leave the request anonymous instead of failing it.
func IdentifyIfValid(
	issuer security.TokenIssuer,
	revocations security.RevocationStore,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
) gin.HandlerFunc {
	return authenticate(issuer, revocations, logger, timeProvider, false)
}

func authenticate(
	issuer security.TokenIssuer,
	revocations security.RevocationStore,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	strict bool,
) gin.HandlerFunc {
	reject := func(c *gin.Context, err error) {
		if strict {
			abortWithError(c, err, timeProvider)
			return
		}
		logger.Debug("Ignoring unusable bearer token", map[string]any{
			"error": err.Error(),
		})
		c.Next()
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			reject(c, errs.NewAuthenticationError("Invalid authorization header format."))
			return
		}

		claims, err := issuer.Parse(strings.TrimSpace(token))
		if err != nil {
			reject(c, err)
			return
		}

		revoked, err := revocations.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			logger.Error("Failed to check token revocation", map[string]any{
				"token_id": claims.ID,
				"error":    err.Error(),
			})
			reject(c, errs.NewInternalServerError("Could not verify token.", err))
			return
		}
		if revoked {
			reject(c, errs.NewAuthenticationError("Token has been revoked. Please login."))
			return
		}

		principal := claims.Principal
		c.Set(principalKey, &principal)
		c.Set(tokenClaimsKey, claims)
		c.Next()
	}
}

// AdminGuard middleware admits only authenticated admins
func AdminGuard(timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			abortWithError(c, errs.NewAuthenticationError("No login detected. Please login."), timeProvider)
			return
		}
		if !principal.IsAdmin() {
			abortWithError(c, errs.NewForbiddenError(""), timeProvider)
			return
		}

		c.Next()
	}
}

// GetPrincipal returns the authenticated principal of the request
func GetPrincipal(c *gin.Context) (*entity.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*entity.Principal)
	return principal, ok
}

// GetTokenClaims returns the verified token claims of the request
func GetTokenClaims(c *gin.Context) (*security.TokenClaims, bool) {
	value, exists := c.Get(tokenClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*security.TokenClaims)
	return claims, ok
}
