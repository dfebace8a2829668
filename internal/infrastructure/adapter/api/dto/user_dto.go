package dto

import "github.com/amirhossein-jamali/bank-api/internal/domain/entity"

// UserRequest represents the API request for registering or updating a user
type UserRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// ToEntity maps the request onto a user with the given id
func (r UserRequest) ToEntity(id uint64) *entity.User {
	return &entity.User{
		ID:        id,
		Username:  r.Username,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// UserResponse represents a user in API responses. Passwords are never returned.
type UserResponse struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// NewUserResponse maps a user entity to its response
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}
}

// NewUserResponses maps a slice of user entities
func NewUserResponses(users []*entity.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, NewUserResponse(user))
	}
	return responses
}
