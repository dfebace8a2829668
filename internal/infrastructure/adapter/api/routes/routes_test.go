package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/security"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/logger"
	securityadapter "github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/security"
	timeprovider "github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/bank-api/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/bank-api/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type healthyDB struct{}

func (healthyDB) HealthCheck(context.Context) database.HealthStatus {
	return database.HealthStatus{Healthy: true}
}

type testServer struct {
	router       *gin.Engine
	users        *usecasemocks.MockUserUseCase
	transactions *usecasemocks.MockTransactionUseCase
	issuer       security.TokenIssuer
}

func newTestServer(t *testing.T) testServer {
	gin.SetMode(gin.TestMode)
	clock := timeprovider.NewRealTimeProvider()
	log := logger.NewNoopLogger()

	issuer, err := securityadapter.NewJWTIssuer("test-secret", "bank-api", time.Hour, clock)
	require.NoError(t, err)
	revocations := securityadapter.NewMemoryRevocationStore(clock)

	users := usecasemocks.NewMockUserUseCase(t)
	accounts := usecasemocks.NewMockAccountUseCase(t)
	transactions := usecasemocks.NewMockTransactionUseCase(t)

	router := gin.New()
	SetupMiddlewares(router, log, clock, nil)
	SetupRoutes(router, Handlers{
		User:        handler.NewUserHandler(users, log, clock),
		Account:     handler.NewAccountHandler(accounts, log, clock),
		Transaction: handler.NewTransactionHandler(transactions, usecase.BalanceCheckAtomic, log, clock),
		Auth:        handler.NewAuthHandler(users, issuer, revocations, log, clock),
		Health:      handler.NewHealthHandler(healthyDB{}),
	}, Security{
		Issuer:       issuer,
		Revocations:  revocations,
		LoginLimiter: middleware.NewRateLimiter(100, 100, log, clock),
	}, log, clock)

	return testServer{router: router, users: users, transactions: transactions, issuer: issuer}
}

func (s testServer) do(t *testing.T, method, path, role, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		issued, err := s.issuer.Issue(&entity.Principal{ID: 1, Username: "someone", Role: role})
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+issued.Token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestUserRoutesRequireAdmin(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/users", "", "").Code)
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/users/1", entity.RoleUser, "").Code)

	s.users.EXPECT().GetAllUsers(mock.Anything).Return([]*entity.User{{ID: 1, Username: "admin", Role: entity.RoleAdmin}}, nil)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/users", entity.RoleAdmin, "").Code)
}

func TestRegistrationIsOpen(t *testing.T) {
	s := newTestServer(t)
	s.users.EXPECT().AddNewUser(mock.Anything, mock.Anything).
		Return(&entity.User{ID: 2, Username: "jdoe", Role: entity.RoleUser}, nil)

	w := s.do(t, http.MethodPost, "/users", "",
		`{"username":"jdoe","password":"pw","firstName":"John","lastName":"Doe"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

// expiredToken signs a token with the server's secret that expired an hour ago
func expiredToken(t *testing.T) string {
	past := time.Now().Add(-2 * time.Hour)
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(past).Maybe()

	issuer, err := securityadapter.NewJWTIssuer("test-secret", "bank-api", time.Hour, clock)
	require.NoError(t, err)
	issued, err := issuer.Issue(&entity.Principal{ID: 1, Username: "admin", Role: entity.RoleAdmin})
	require.NoError(t, err)
	return issued.Token
}

func TestAuthRoutesWithStaleToken(t *testing.T) {
	stale := expiredToken(t)

	send := func(s testServer, method, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/auth", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+stale)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		return w
	}

	t.Run("login succeeds", func(t *testing.T) {
		s := newTestServer(t)
		s.users.EXPECT().AuthenticateUser(mock.Anything, "admin", "pass").
			Return(&entity.User{ID: 1, Username: "admin", Role: entity.RoleAdmin}, nil)

		w := send(s, http.MethodPost, `{"username":"admin","password":"pass"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token"`)
	})

	t.Run("logout succeeds", func(t *testing.T) {
		s := newTestServer(t)

		assert.Equal(t, http.StatusNoContent, send(s, http.MethodGet, "").Code)
		assert.Equal(t, http.StatusNoContent, send(s, http.MethodDelete, "").Code)
	})

	t.Run("protected routes still reject it", func(t *testing.T) {
		s := newTestServer(t)
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Authorization", "Bearer "+stale)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestTransactionUpdateIsNotAllowed(t *testing.T) {
	s := newTestServer(t)
	s.transactions.EXPECT().UpdateTransaction(mock.Anything, mock.Anything).
		Return(false, errs.NewOperationNotSupportedError(""))

	w := s.do(t, http.MethodPut, "/transactions/1", "", `{}`)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestOperationalRoutes(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/health", "", "").Code)

	w := s.do(t, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bank_api_http_requests_total")
}
