package users

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/database"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/dto"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/handler"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/store"
)

var listUsers = store.ListUsers

// @Summary     List users
// @Description 管理員專用，列出所有使用者（不含密碼）
// @Tags        users
// @Produce     json
// @Success     200 {object} dto.UserListResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return handler.InternalError(c, err, "failed to list users")
		}
		data := make([]dto.UserResponse, 0, len(list))
		for _, u := range list {
			data = append(data, dto.NewUserResponse(u))
		}
		return c.JSON(http.StatusOK, dto.UserListResponse{
			Success: true,
			Count:   len(data),
			Data:    data,
		})
	}
}
