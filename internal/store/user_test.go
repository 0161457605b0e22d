package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/database"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/model"
)

func TestUserStore(t *testing.T) {
	now := time.Now().UTC()
	sample := &model.User{
		ID:           uuid.New(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		Role:         model.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	/* --- GetUserByID --- */
	t.Run("GetUserByID success", func(t *testing.T) {
		var gotArgs []any
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeRow{user: sample}
			},
		}
		u, err := GetUserByID(context.Background(), p, sample.ID)
		require.NoError(t, err)
		require.Equal(t, sample.Email, u.Email)
		require.True(t, u.IsAdmin())
		require.Equal(t, []any{sample.ID}, gotArgs)
	})

	t.Run("GetUserByID not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		u, err := GetUserByID(context.Background(), p, uuid.New())
		require.Error(t, err)
		require.True(t, IsNotFound(err))
		require.Nil(t, u)
	})

	/* --- GetUserByEmail --- */
	t.Run("GetUserByEmail success", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{user: sample}
			},
		}
		u, err := GetUserByEmail(context.Background(), p, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, sample.ID, u.ID)
		require.Equal(t, "hash123", u.PasswordHash)
	})

	t.Run("GetUserByEmail not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetUserByEmail(context.Background(), p, "bob@example.com")
		require.True(t, IsNotFound(err))
	})

	/* --- CreateUser --- */
	t.Run("CreateUser assigns id and default role", func(t *testing.T) {
		var gotArgs []any
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeRow{now: now}
			},
		}
		created, err := CreateUser(context.Background(), p, &model.User{Name: "Bob", Email: "bob@example.com", PasswordHash: "h"})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, created.ID)
		require.Equal(t, model.RoleUser, created.Role)
		require.Equal(t, now, created.CreatedAt)
		require.Equal(t, created.ID, gotArgs[0])
		require.Equal(t, model.RoleUser, gotArgs[4])
	})

	t.Run("CreateUser duplicate email", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}}
			},
		}
		_, err := CreateUser(context.Background(), p, &model.User{Email: "a@b.c"})
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("CreateUser second admin", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_single_admin_idx"}}
			},
		}
		_, err := CreateUser(context.Background(), p, &model.User{Role: model.RoleAdmin})
		require.ErrorIs(t, err, ErrAdminExists)
	})

	t.Run("CreateUser other error", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("conn reset")}
			},
		}
		_, err := CreateUser(context.Background(), p, &model.User{})
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrEmailTaken)
	})

	/* --- AdminExists --- */
	t.Run("AdminExists", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{model.RoleAdmin}, args)
				return &fakeRow{exists: true}
			},
		}
		ok, err := AdminExists(context.Background(), p)
		require.NoError(t, err)
		require.True(t, ok)

		p.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return &fakeRow{scanErr: errors.New("x")} }
		_, err = AdminExists(context.Background(), p)
		require.Error(t, err)
	})

	/* --- ListUsers --- */
	t.Run("ListUsers ok", func(t *testing.T) {
		rows := &fakeRows{users: []model.User{*sample, *sample}}
		p := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return rows, nil },
		}
		list, err := ListUsers(context.Background(), p)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.True(t, rows.closed)
	})

	t.Run("ListUsers errors", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("q") },
		}
		_, err := ListUsers(context.Background(), p)
		require.Error(t, err)

		p.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeRows{users: []model.User{*sample}, scanErr: errors.New("scan")}, nil
		}
		_, err = ListUsers(context.Background(), p)
		require.Error(t, err)

		p.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeRows{err: errors.New("rows")}, nil
		}
		_, err = ListUsers(context.Background(), p)
		require.Error(t, err)
	})
}
