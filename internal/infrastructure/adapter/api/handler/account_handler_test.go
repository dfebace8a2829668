package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/time"
	usecasemocks "github.com/amirhossein-jamali/bank-api/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountRouter(t *testing.T) (*gin.Engine, *usecasemocks.MockAccountUseCase) {
	uc := usecasemocks.NewMockAccountUseCase(t)
	h := NewAccountHandler(uc, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())

	router := gin.New()
	router.GET("/accounts", h.GetAllAccounts)
	router.GET("/accounts/:id", h.GetAccountByID)
	router.POST("/accounts", h.CreateAccount)
	router.PUT("/accounts/:id", h.UpdateAccount)
	router.DELETE("/accounts/:id", h.DeleteAccount)
	return router, uc
}

func sampleAccount() *entity.Account {
	return &entity.Account{ID: 9, Balance: decimal.RequireFromString("400"), Type: "Checking", OwnerID: 3}
}

func TestGetAccountHandlers(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		router, uc := newAccountRouter(t)
		uc.EXPECT().GetAllAccounts(mock.Anything).Return([]*entity.Account{sampleAccount()}, nil)

		w := perform(router, http.MethodGet, "/accounts", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var accounts []dto.AccountResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &accounts))
		require.Len(t, accounts, 1)
		assert.Equal(t, "400.00", accounts[0].Balance)
	})

	t.Run("by id", func(t *testing.T) {
		router, uc := newAccountRouter(t)
		uc.EXPECT().GetAccountByID(mock.Anything, uint64(9)).Return(sampleAccount(), nil)

		w := perform(router, http.MethodGet, "/accounts/9", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ownerId":3`)
	})

	t.Run("missing", func(t *testing.T) {
		router, uc := newAccountRouter(t)
		uc.EXPECT().GetAccountByID(mock.Anything, uint64(9)).
			Return(nil, errs.NewResourceNotFoundError("No account exists with provided ID."))

		w := perform(router, http.MethodGet, "/accounts/9", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreateAccountHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, uc := newAccountRouter(t)
		uc.EXPECT().AddNewAccount(mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
			return a.OwnerID == 3 && a.Type == "Checking" && a.Balance.Equal(decimal.RequireFromString("400"))
		})).Return(sampleAccount(), nil)

		w := perform(router, http.MethodPost, "/accounts", `{"balance": 400, "type": "Checking", "ownerId": 3}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/accounts/9", w.Header().Get("Location"))
	})

	t.Run("owner missing", func(t *testing.T) {
		router, uc := newAccountRouter(t)
		uc.EXPECT().AddNewAccount(mock.Anything, mock.Anything).
			Return(nil, errs.NewResourcePersistenceError("No user exists with provided owner ID."))

		w := perform(router, http.MethodPost, "/accounts", `{"balance": "10", "type": "Savings", "ownerId": 99}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("negative balance", func(t *testing.T) {
		router, _ := newAccountRouter(t)

		w := perform(router, http.MethodPost, "/accounts", `{"balance": -1, "type": "Checking", "ownerId": 3}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("too many decimals", func(t *testing.T) {
		router, _ := newAccountRouter(t)

		w := perform(router, http.MethodPost, "/accounts", `{"balance": "1.005", "type": "Checking", "ownerId": 3}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("balance beyond column range", func(t *testing.T) {
		router, _ := newAccountRouter(t)

		w := perform(router, http.MethodPost, "/accounts", `{"balance": "1e20", "type": "Checking", "ownerId": 3}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateAndDeleteAccountHandlers(t *testing.T) {
	t.Run("update", func(t *testing.T) {
		router, uc := newAccountRouter(t)
		uc.EXPECT().UpdateAccount(mock.Anything, &entity.Account{ID: 9, Type: "Savings", OwnerID: 3}).Return(true, nil)

		w := perform(router, http.MethodPut, "/accounts/9", dto.UpdateAccountRequest{Type: "Savings", OwnerID: 3})

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("delete referenced account", func(t *testing.T) {
		router, uc := newAccountRouter(t)
		uc.EXPECT().DeleteAccount(mock.Anything, &entity.Account{ID: 9}).
			Return(false, errs.NewResourcePersistenceError("Account is still referenced."))

		w := perform(router, http.MethodDelete, "/accounts/9", nil)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
