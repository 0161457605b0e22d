// File: internal/dto/user_response.go
package dto

import "github.com/Abbas-Hussain-byte/primetrade-assignment/internal/model"

// swagger:model dto.UserResponse
type UserResponse struct {
	ID    string `json:"_id" example:"8f14e45f-ceea-467f-a0e6-6a0b3a0f2c11"`
	Name  string `json:"name" example:"Alice"`
	Email string `json:"email" example:"alice@example.com"`
	Role  string `json:"role" example:"user"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// swagger:model dto.UserListResponse
type UserListResponse struct {
	Success bool           `json:"success" example:"true"`
	Count   int            `json:"count" example:"1"`
	Data    []UserResponse `json:"data"`
}
