package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	baseHandler
	accountUseCase usecase.AccountUseCase
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(
	accountUseCase usecase.AccountUseCase,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
) *AccountHandler {
	return &AccountHandler{
		baseHandler:    baseHandler{logger: logger, timeProvider: timeProvider},
		accountUseCase: accountUseCase,
	}
}

// GetAllAccounts handles GET /accounts
func (h *AccountHandler) GetAllAccounts(c *gin.Context) {
	accounts, err := h.accountUseCase.GetAllAccounts(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAccountResponses(accounts))
}

// GetAccountByID handles GET /accounts/:id
func (h *AccountHandler) GetAccountByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	account, err := h.accountUseCase.GetAccountByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// CreateAccount handles POST /accounts
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if req.Balance.IsNegative() {
		h.respondError(c, errs.NewBadRequestError("Initial balance must not be negative."))
		return
	}
	if err := entity.ValidateAmount(req.Balance); err != nil {
		h.respondError(c, err)
		return
	}

	account, err := h.accountUseCase.AddNewAccount(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Location", c.Request.URL.Path+"/"+uintString(account.ID))
	c.JSON(http.StatusCreated, dto.NewAccountResponse(account))
}

// UpdateAccount handles PUT /accounts/:id
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req dto.UpdateAccountRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if _, err := h.accountUseCase.UpdateAccount(c.Request.Context(), req.ToEntity(id)); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAccount handles DELETE /accounts/:id
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	if _, err := h.accountUseCase.DeleteAccount(c.Request.Context(), &entity.Account{ID: id}); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
