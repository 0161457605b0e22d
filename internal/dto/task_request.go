// File: internal/dto/task_request.go
package dto

// swagger:model dto.CreateTaskRequest
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=50" example:"Write report"`
	Description string `json:"description" validate:"required,max=500" example:"Quarterly numbers"`
	Status      string `json:"status" validate:"omitempty,oneof=pending in-progress completed" example:"pending"`
}

// UpdateTaskRequest 未帶的欄位維持原值；owner 不可變更，因此不接受
// swagger:model dto.UpdateTaskRequest
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=50" example:"Write report"`
	Description *string `json:"description" validate:"omitempty,max=500" example:"Quarterly numbers"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending in-progress completed" example:"in-progress"`
}
