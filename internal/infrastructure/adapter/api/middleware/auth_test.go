package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/security"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/logger"
	securityadapter "github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/security"
	timeprovider "github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/time"
	securitymocks "github.com/amirhossein-jamali/bank-api/mocks/port/security"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authSetup struct {
	router      *gin.Engine
	issuer      security.TokenIssuer
	revocations security.RevocationStore
}

func newAuthSetup(t *testing.T) authSetup {
	clock := timeprovider.NewRealTimeProvider()
	issuer, err := securityadapter.NewJWTIssuer("test-secret", "bank-api", time.Hour, clock)
	require.NoError(t, err)
	revocations := securityadapter.NewMemoryRevocationStore(clock)

	router := gin.New()
	router.Use(Authenticate(issuer, revocations, logger.NewNoopLogger(), clock))
	router.GET("/open", func(c *gin.Context) {
		if principal, ok := GetPrincipal(c); ok {
			c.String(http.StatusOK, principal.Username)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	router.GET("/admin", AdminGuard(clock), func(c *gin.Context) { c.Status(http.StatusOK) })

	return authSetup{router: router, issuer: issuer, revocations: revocations}
}

func (s authSetup) token(t *testing.T, role string) *security.IssuedToken {
	issued, err := s.issuer.Issue(&entity.Principal{ID: 4, Username: "jdoe", Role: role})
	require.NoError(t, err)
	return issued
}

func request(path, authorization string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	return req
}

func TestAuthenticate(t *testing.T) {
	s := newAuthSetup(t)

	t.Run("no token passes anonymously", func(t *testing.T) {
		w := serve(s.router, request("/open", ""))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("valid token sets principal", func(t *testing.T) {
		w := serve(s.router, request("/open", "Bearer "+s.token(t, entity.RoleUser).Token))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "jdoe", w.Body.String())
	})

	t.Run("malformed header", func(t *testing.T) {
		w := serve(s.router, request("/open", "Token abc"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, errs.CodeAuthentication, decodeError(t, w).Code)
	})

	t.Run("forged token", func(t *testing.T) {
		w := serve(s.router, request("/open", "Bearer not.a.jwt"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		issued := s.token(t, entity.RoleUser)
		require.NoError(t, s.revocations.Revoke(context.Background(), issued.ID, issued.ExpiresAt))

		w := serve(s.router, request("/open", "Bearer "+issued.Token))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Token has been revoked. Please login.", decodeError(t, w).Reason)
	})
}

func TestAuthenticateStoreFailure(t *testing.T) {
	clock := timeprovider.NewRealTimeProvider()
	issuer := securitymocks.NewMockTokenIssuer(t)
	revocations := securitymocks.NewMockRevocationStore(t)

	issuer.EXPECT().Parse("abc").Return(&security.TokenClaims{
		ID:        "tok-1",
		Principal: entity.Principal{ID: 4, Username: "jdoe", Role: entity.RoleUser},
		ExpiresAt: clock.Now().Add(time.Hour),
	}, nil)
	revocations.EXPECT().IsRevoked(mock.Anything, "tok-1").Return(false, errors.New("redis down"))

	router := gin.New()
	router.Use(Authenticate(issuer, revocations, logger.NewNoopLogger(), clock))
	router.GET("/open", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(router, request("/open", "Bearer abc"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, errs.CodeInternalServer, decodeError(t, w).Code)
}

func TestIdentifyIfValid(t *testing.T) {
	s := newAuthSetup(t)
	clock := timeprovider.NewRealTimeProvider()

	router := gin.New()
	router.Use(IdentifyIfValid(s.issuer, s.revocations, logger.NewNoopLogger(), clock))
	router.GET("/whoami", func(c *gin.Context) {
		if principal, ok := GetPrincipal(c); ok {
			c.String(http.StatusOK, principal.Username)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	revoked := s.token(t, entity.RoleUser)
	require.NoError(t, s.revocations.Revoke(context.Background(), revoked.ID, revoked.ExpiresAt))

	testCases := []struct {
		name          string
		authorization string
		want          string
	}{
		{"valid token", "Bearer " + s.token(t, entity.RoleUser).Token, "jdoe"},
		{"malformed header", "Token abc", "anonymous"},
		{"forged token", "Bearer not.a.jwt", "anonymous"},
		{"revoked token", "Bearer " + revoked.Token, "anonymous"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(router, request("/whoami", tc.authorization))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.want, w.Body.String())
		})
	}
}

func TestAdminGuard(t *testing.T) {
	s := newAuthSetup(t)

	t.Run("no login", func(t *testing.T) {
		w := serve(s.router, request("/admin", ""))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "Authentication failed.", resp.Message)
		assert.Equal(t, "No login detected. Please login.", resp.Reason)
	})

	t.Run("non admin", func(t *testing.T) {
		w := serve(s.router, request("/admin", "Bearer "+s.token(t, entity.RoleUser).Token))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin", func(t *testing.T) {
		w := serve(s.router, request("/admin", "Bearer "+s.token(t, entity.RoleAdmin).Token))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
