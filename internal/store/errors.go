package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

var (
	ErrEmailTaken  = errors.New("email already registered")
	ErrAdminExists = errors.New("admin already exists")
)

// IsNotFound 判斷錯誤是否為查無資料
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// mapUniqueViolation 依 constraint 名稱把 unique violation 轉成 sentinel error
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case "users_email_key":
			return ErrEmailTaken
		case "users_single_admin_idx":
			return ErrAdminExists
		}
	}
	return err
}
