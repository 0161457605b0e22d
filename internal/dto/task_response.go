// File: internal/dto/task_response.go
package dto

import (
	"time"

	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/model"
)

// swagger:model dto.TaskOwner
type TaskOwner struct {
	ID    string `json:"_id" example:"8f14e45f-ceea-467f-a0e6-6a0b3a0f2c11"`
	Name  string `json:"name" example:"Alice"`
	Email string `json:"email" example:"alice@example.com"`
}

// swagger:model dto.TaskResponse
type TaskResponse struct {
	ID          string    `json:"_id" example:"c9f0f895-fb98-4b91-9f3e-3f7d1a1a8e21"`
	Title       string    `json:"title" example:"Write report"`
	Description string    `json:"description" example:"Quarterly numbers"`
	Status      string    `json:"status" example:"pending"`
	Owner       TaskOwner `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewTaskResponse(t model.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Owner: TaskOwner{
			ID:    t.OwnerID.String(),
			Name:  t.OwnerName,
			Email: t.OwnerEmail,
		},
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// swagger:model dto.TaskEnvelope
type TaskEnvelope struct {
	Success bool         `json:"success" example:"true"`
	Data    TaskResponse `json:"data"`
}

// swagger:model dto.TaskListResponse
type TaskListResponse struct {
	Success bool           `json:"success" example:"true"`
	Count   int            `json:"count" example:"1"`
	Data    []TaskResponse `json:"data"`
}

// swagger:model dto.DeleteResponse
type DeleteResponse struct {
	Success bool     `json:"success" example:"true"`
	Data    struct{} `json:"data"`
}
