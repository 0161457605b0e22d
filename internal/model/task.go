// File: internal/model/task.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
)

// Task 使用者擁有的工作項目；OwnerName / OwnerEmail 由 JOIN users 帶出
type Task struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	OwnerID     uuid.UUID `db:"owner_id"`
	OwnerName   string    `db:"owner_name"`
	OwnerEmail  string    `db:"owner_email"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// TaskPatch 部分更新欄位，nil 表示不變更
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
}
