package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/database"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/model"
)

// taskSelect 帶出擁有者姓名與 Email
const taskSelect = `
SELECT t.id, t.title, t.description, t.status, t.owner_id, u.name, u.email, t.created_at, t.updated_at
FROM tasks t
JOIN users u ON u.id = t.owner_id`

func scanTask(row pgx.Row, t *model.Task) error {
	return row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.OwnerID,
		&t.OwnerName,
		&t.OwnerEmail,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
}

func queryTasks(ctx context.Context, db database.DB, op, sql string, args ...any) ([]model.Task, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := scanTask(rows, &t); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tasks, nil
}

// ListTasks 取得所有工作（管理員用）
func ListTasks(ctx context.Context, db database.DB) ([]model.Task, error) {
	return queryTasks(ctx, db, "ListTasks", taskSelect+` ORDER BY t.created_at DESC`)
}

// ListTasksByOwner 取得指定擁有者的工作
func ListTasksByOwner(ctx context.Context, db database.DB, ownerID uuid.UUID) ([]model.Task, error) {
	return queryTasks(ctx, db, "ListTasksByOwner",
		taskSelect+` WHERE t.owner_id = $1 ORDER BY t.created_at DESC`, ownerID)
}

func GetTaskByID(ctx context.Context, db database.DB, id uuid.UUID) (*model.Task, error) {
	t := &model.Task{}
	row := db.QueryRow(ctx, taskSelect+` WHERE t.id = $1`, id)
	if err := scanTask(row, t); err != nil {
		return nil, fmt.Errorf("GetTaskByID: %w", err)
	}
	return t, nil
}

// CreateTask 新增工作；ID 未指定時自動產生，status 未指定時為 pending
func CreateTask(ctx context.Context, db database.DB, t *model.Task) (*model.Task, error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = model.TaskStatusPending
	}
	row := db.QueryRow(ctx, `
        INSERT INTO tasks (id, title, description, status, owner_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at
    `,
		t.ID,
		t.Title,
		t.Description,
		t.Status,
		t.OwnerID,
	)
	if err := row.Scan(&t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateTask: %w", err)
	}
	return t, nil
}

// UpdateTask 只更新 patch 中非 nil 的欄位，owner_id 不可變更
func UpdateTask(ctx context.Context, db database.DB, id uuid.UUID, p model.TaskPatch) (*model.Task, error) {
	t := &model.Task{}
	row := db.QueryRow(ctx, `
        WITH t AS (
            UPDATE tasks SET
                title = COALESCE($2, title),
                description = COALESCE($3, description),
                status = COALESCE($4, status),
                updated_at = now()
            WHERE id = $1
            RETURNING *
        )
        SELECT t.id, t.title, t.description, t.status, t.owner_id, u.name, u.email, t.created_at, t.updated_at
        FROM t
        JOIN users u ON u.id = t.owner_id
    `,
		id,
		p.Title,
		p.Description,
		p.Status,
	)
	if err := scanTask(row, t); err != nil {
		return nil, fmt.Errorf("UpdateTask: %w", err)
	}
	return t, nil
}

// DeleteTask 刪除工作，查無資料時回傳 pgx.ErrNoRows
func DeleteTask(ctx context.Context, db database.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteTask: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteTask: %w", pgx.ErrNoRows)
	}
	return nil
}
