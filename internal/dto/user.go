package dto

import (
	"time"

	"taskflow/internal/model"
)

// UserResponse never exposes the password hash.
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserCreateRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password" binding:"required,min=3"`
}

type UserUpdateRequest struct {
	Email     Optional[string] `json:"email"`
	FirstName Optional[string] `json:"firstName"`
	LastName  Optional[string] `json:"lastName"`
	Password  Optional[string] `json:"password"`
}

func NewUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}
}

func NewUserResponseList(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
