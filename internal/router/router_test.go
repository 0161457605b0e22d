package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/cache"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/database"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, nil)

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/v1/ping",
		http.MethodPost + " /api/v1/auth/register",
		http.MethodPost + " /api/v1/auth/login",
		http.MethodGet + " /api/v1/auth/me",
		http.MethodGet + " /api/v1/tasks",
		http.MethodPost + " /api/v1/tasks",
		http.MethodGet + " /api/v1/tasks/:id",
		http.MethodPut + " /api/v1/tasks/:id",
		http.MethodDelete + " /api/v1/tasks/:id",
		http.MethodGet + " /api/v1/users",
	}

	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, nil)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodGet, "/api/v1/tasks"},
		{http.MethodPost, "/api/v1/tasks"},
		{http.MethodGet, "/api/v1/tasks/abc"},
		{http.MethodPut, "/api/v1/tasks/abc"},
		{http.MethodDelete, "/api/v1/tasks/abc"},
		{http.MethodGet, "/api/v1/users"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
		require.JSONEq(t, `{"message":"Not authorized to access this route"}`, rec.Body.String())
	}
}
