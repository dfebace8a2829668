package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/security"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles login and logout
type AuthHandler struct {
	baseHandler
	userUseCase usecase.UserUseCase
	issuer      security.TokenIssuer
	revocations security.RevocationStore
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	userUseCase usecase.UserUseCase,
	issuer security.TokenIssuer,
	revocations security.RevocationStore,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
) *AuthHandler {
	return &AuthHandler{
		baseHandler: baseHandler{logger: logger, timeProvider: timeProvider},
		userUseCase: userUseCase,
		issuer:      issuer,
		revocations: revocations,
	}
}

// Login handles POST /auth
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.userUseCase.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	principal := entity.NewPrincipal(user)
	token, err := h.issuer.Issue(principal)
	if err != nil {
		h.respondError(c, errs.NewInternalServerError("Could not issue token.", err))
		return
	}

	h.logger.Info("User logged in", map[string]any{
		"userId":  principal.ID,
		"role":    principal.Role,
		"tokenId": token.ID,
	})
	c.JSON(http.StatusOK, dto.NewPrincipalResponse(principal, token))
}

// Logout handles GET and DELETE /auth. Anonymous requests succeed as well.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.GetTokenClaims(c)
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.revocations.Revoke(c.Request.Context(), claims.ID, claims.ExpiresAt); err != nil {
		h.respondError(c, errs.NewInternalServerError("Could not revoke token.", err))
		return
	}
	metrics.RecordTokenRevoked()

	h.logger.Info("User logged out", map[string]any{
		"userId":  claims.Principal.ID,
		"tokenId": claims.ID,
	})
	c.Status(http.StatusNoContent)
}
