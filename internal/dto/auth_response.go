// File: internal/dto/auth_response.go
package dto

// AuthResponse 註冊與登入成功時回傳使用者資料與存取令牌
// swagger:model dto.AuthResponse
type AuthResponse struct {
	ID    string `json:"_id" example:"8f14e45f-ceea-467f-a0e6-6a0b3a0f2c11"`
	Name  string `json:"name" example:"Alice"`
	Email string `json:"email" example:"alice@example.com"`
	Role  string `json:"role" example:"user"`
	Token string `json:"token" example:"eyJhbGciOi..."`
}
