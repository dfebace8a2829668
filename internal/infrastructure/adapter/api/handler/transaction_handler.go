package handler

import (
	"errors"
	"net/http"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// Outcomes recorded for new transactions
const (
	outcomeAccepted          = "accepted"
	outcomeInsufficientFunds = "insufficient_funds"
	outcomeRejected          = "rejected"
	outcomeFailed            = "failed"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	baseHandler
	transactionUseCase usecase.TransactionUseCase
	mode               usecase.BalanceCheckMode
}

// NewTransactionHandler creates a new transaction handler instance.
// mode only labels the recorded metrics.
func NewTransactionHandler(
	transactionUseCase usecase.TransactionUseCase,
	mode usecase.BalanceCheckMode,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
) *TransactionHandler {
	return &TransactionHandler{
		baseHandler:        baseHandler{logger: logger, timeProvider: timeProvider},
		transactionUseCase: transactionUseCase,
		mode:               mode,
	}
}

// GetAllTransactions handles GET /transactions
func (h *TransactionHandler) GetAllTransactions(c *gin.Context) {
	transactions, err := h.transactionUseCase.GetAllTransactions(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponses(transactions))
}

// GetTransactionByID handles GET /transactions/:id
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	transaction, err := h.transactionUseCase.GetTransactionByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// CreateTransaction handles POST /transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req dto.TransactionRequest
	if !h.bindJSON(c, &req) {
		metrics.RecordTransaction(string(h.mode), outcomeRejected)
		return
	}

	transaction, err := h.transactionUseCase.AddNewTransaction(c.Request.Context(), req.ToEntity(0))
	if err != nil {
		metrics.RecordTransaction(string(h.mode), transactionOutcome(err))
		h.respondError(c, err)
		return
	}

	metrics.RecordTransaction(string(h.mode), outcomeAccepted)
	c.Header("Location", c.Request.URL.Path+"/"+uintString(transaction.ID))
	c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// UpdateTransaction handles PUT /transactions/:id, which is refused
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	if _, err := h.transactionUseCase.UpdateTransaction(c.Request.Context(), &entity.Transaction{ID: id}); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func transactionOutcome(err error) string {
	switch {
	case errors.Is(err, errs.ErrInsufficientFunds):
		return outcomeInsufficientFunds
	case errs.StatusCode(err) >= http.StatusInternalServerError:
		return outcomeFailed
	default:
		return outcomeRejected
	}
}
