// File: internal/dto/http_error.go
package dto

// HTTPError 全域錯誤響應模型，所有錯誤皆回傳 {"message": "..."}
// swagger:model dto.HTTPError
type HTTPError struct {
	Message string `json:"message" example:"Task not found"`
}
