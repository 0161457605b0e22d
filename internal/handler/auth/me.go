// File: internal/handler/auth/me.go
package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/database"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/dto"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/handler"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/middleware"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/store"
)

// GetMeHandler 取得當前使用者資訊
// @Summary     Get current user info
// @Description 透過 JWT Token 取得當前使用者詳細資訊
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.UserResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /auth/me [get]
func GetMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		current, ok := middleware.CurrentUser(c)
		if !ok {
			return handler.Fail(c, http.StatusUnauthorized, "Not authorized to access this route")
		}
		user, err := getUserByID(c.Request().Context(), db, current.ID)
		if err != nil {
			if store.IsNotFound(err) {
				return handler.Fail(c, http.StatusNotFound, "User not found")
			}
			return handler.InternalError(c, err, "failed to load user")
		}
		return c.JSON(http.StatusOK, dto.NewUserResponse(*user))
	}
}
