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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserRouter(t *testing.T) (*gin.Engine, *usecasemocks.MockUserUseCase) {
	uc := usecasemocks.NewMockUserUseCase(t)
	h := NewUserHandler(uc, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())

	router := gin.New()
	router.GET("/users", h.GetAllUsers)
	router.GET("/users/search", h.SearchUsers)
	router.GET("/users/:id", h.GetUserByID)
	router.POST("/users", h.RegisterUser)
	router.PUT("/users/:id", h.UpdateUser)
	router.DELETE("/users/:id", h.DeleteUser)
	return router, uc
}

func sampleUser() *entity.User {
	return &entity.User{ID: 3, Username: "jdoe", FirstName: "John", LastName: "Doe", Role: entity.RoleUser}
}

func TestGetAllUsersHandler(t *testing.T) {
	t.Run("returns users", func(t *testing.T) {
		router, uc := newUserRouter(t)
		uc.EXPECT().GetAllUsers(mock.Anything).Return([]*entity.User{sampleUser()}, nil)

		w := perform(router, http.MethodGet, "/users", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var users []dto.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
		require.Len(t, users, 1)
		assert.Equal(t, "jdoe", users[0].Username)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("empty store is not found", func(t *testing.T) {
		router, uc := newUserRouter(t)
		uc.EXPECT().GetAllUsers(mock.Anything).Return(nil, errs.NewResourceNotFoundError("No users exist."))

		w := perform(router, http.MethodGet, "/users", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "Resource not found.", resp.Message)
		assert.Equal(t, "No users exist.", resp.Reason)
		assert.Equal(t, errs.CodeResourceNotFound, resp.Code)
	})
}

func TestGetUserByIDHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, uc := newUserRouter(t)
		uc.EXPECT().GetUserByID(mock.Anything, uint64(3)).Return(sampleUser(), nil)

		w := perform(router, http.MethodGet, "/users/3", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var user dto.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
		assert.Equal(t, uint64(3), user.ID)
	})

	for _, raw := range []string{"abc", "3.14", "0"} {
		t.Run("invalid id "+raw, func(t *testing.T) {
			router, _ := newUserRouter(t)

			w := perform(router, http.MethodGet, "/users/"+raw, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Bad request. Invalid parameters entered.", decodeError(t, w).Message)
		})
	}

	t.Run("store failure", func(t *testing.T) {
		router, uc := newUserRouter(t)
		uc.EXPECT().GetUserByID(mock.Anything, uint64(3)).
			Return(nil, errs.NewInternalServerError("Failed to get user.", assert.AnError))

		w := perform(router, http.MethodGet, "/users/3", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}

func TestSearchUsersHandler(t *testing.T) {
	router, uc := newUserRouter(t)
	uc.EXPECT().GetUserByUniqueKey(mock.Anything, "username", "jdoe").Return(sampleUser(), nil)

	w := perform(router, http.MethodGet, "/users/search?username=jdoe", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"jdoe"`)
}

func TestRegisterUserHandler(t *testing.T) {
	request := dto.UserRequest{Username: "jdoe", Password: "secret", FirstName: "John", LastName: "Doe"}

	t.Run("created", func(t *testing.T) {
		router, uc := newUserRouter(t)
		uc.EXPECT().AddNewUser(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == 0 && u.Username == "jdoe" && u.Password == "secret"
		})).Return(sampleUser(), nil)

		w := perform(router, http.MethodPost, "/users", request)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/users/3", w.Header().Get("Location"))
		assert.Contains(t, w.Body.String(), `"role":"User"`)
	})

	t.Run("username taken", func(t *testing.T) {
		router, uc := newUserRouter(t)
		uc.EXPECT().AddNewUser(mock.Anything, mock.Anything).
			Return(nil, errs.NewResourcePersistenceError("This username is already taken. Please pick another."))

		w := perform(router, http.MethodPost, "/users", request)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "This username is already taken. Please pick another.", decodeError(t, w).Reason)
	})

	t.Run("missing fields", func(t *testing.T) {
		router, _ := newUserRouter(t)

		w := perform(router, http.MethodPost, "/users", map[string]string{"username": "jdoe"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := newUserRouter(t)

		w := perform(router, http.MethodPost, "/users", "{not json")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateUserHandler(t *testing.T) {
	request := dto.UserRequest{Username: "jdoe2", Password: "secret", FirstName: "John", LastName: "Doe"}

	t.Run("updated", func(t *testing.T) {
		router, uc := newUserRouter(t)
		uc.EXPECT().UpdateUser(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == 3 && u.Username == "jdoe2"
		})).Return(true, nil)

		w := perform(router, http.MethodPut, "/users/3", request)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("missing user", func(t *testing.T) {
		router, uc := newUserRouter(t)
		uc.EXPECT().UpdateUser(mock.Anything, mock.Anything).
			Return(false, errs.NewResourceNotFoundError("No user exists with provided ID."))

		w := perform(router, http.MethodPut, "/users/3", request)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteUserHandler(t *testing.T) {
	router, uc := newUserRouter(t)
	uc.EXPECT().DeleteUser(mock.Anything, &entity.User{ID: 3}).Return(true, nil)

	w := perform(router, http.MethodDelete, "/users/3", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
