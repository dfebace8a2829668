package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	baseHandler
	userUseCase usecase.UserUseCase
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
) *UserHandler {
	return &UserHandler{
		baseHandler: baseHandler{logger: logger, timeProvider: timeProvider},
		userUseCase: userUseCase,
	}
}

// GetAllUsers handles GET /users
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userUseCase.GetAllUsers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

// GetUserByID handles GET /users/:id
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	user, err := h.userUseCase.GetUserByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// SearchUsers handles GET /users/search?username=
func (h *UserHandler) SearchUsers(c *gin.Context) {
	user, err := h.userUseCase.GetUserByUniqueKey(
		c.Request.Context(),
		string(entity.UserFieldUsername),
		c.Query(string(entity.UserFieldUsername)),
	)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// RegisterUser handles POST /users
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req dto.UserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.userUseCase.AddNewUser(c.Request.Context(), req.ToEntity(0))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Location", c.Request.URL.Path+"/"+uintString(user.ID))
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req dto.UserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if _, err := h.userUseCase.UpdateUser(c.Request.Context(), req.ToEntity(id)); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	if _, err := h.userUseCase.DeleteUser(c.Request.Context(), &entity.User{ID: id}); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
