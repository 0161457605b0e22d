package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/model"
)

/* ---------- 假實作 ---------- */

// fakeRow 依 Scan 目的欄位數決定填入內容：
// 7 → users 整列；9 → tasks JOIN users；2 → created_at, updated_at；1 → EXISTS
type fakeRow struct {
	scanErr error
	user    *model.User
	task    *model.Task
	exists  bool
	now     time.Time
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	switch len(dest) {
	case 7:
		fillUser(dest, r.user)
	case 9:
		fillTask(dest, r.task)
	case 2:
		*dest[0].(*time.Time) = r.now
		*dest[1].(*time.Time) = r.now
	case 1:
		*dest[0].(*bool) = r.exists
	default:
		panic("fakeRow.Scan: unexpected dest count")
	}
	return nil
}

func fillUser(dest []any, u *model.User) {
	*dest[0].(*uuid.UUID) = u.ID
	*dest[1].(*string) = u.Name
	*dest[2].(*string) = u.Email
	*dest[3].(*string) = u.PasswordHash
	*dest[4].(*string) = u.Role
	*dest[5].(*time.Time) = u.CreatedAt
	*dest[6].(*time.Time) = u.UpdatedAt
}

func fillTask(dest []any, t *model.Task) {
	*dest[0].(*uuid.UUID) = t.ID
	*dest[1].(*string) = t.Title
	*dest[2].(*string) = t.Description
	*dest[3].(*string) = t.Status
	*dest[4].(*uuid.UUID) = t.OwnerID
	*dest[5].(*string) = t.OwnerName
	*dest[6].(*string) = t.OwnerEmail
	*dest[7].(*time.Time) = t.CreatedAt
	*dest[8].(*time.Time) = t.UpdatedAt
}

// fakeRows 實作 pgx.Rows，依序回傳 users 或 tasks
type fakeRows struct {
	users   []model.User
	tasks   []model.Task
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.users)+len(r.tasks) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	defer func() { r.idx++ }()
	if len(dest) == 7 {
		fillUser(dest, &r.users[r.idx])
		return nil
	}
	fillTask(dest, &r.tasks[r.idx])
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }
