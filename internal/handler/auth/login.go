// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/database"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/dto"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/handler"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/service"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/store"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/worker"
)

const invalidCredentials = "Invalid credentials"

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，帳號不存在與密碼錯誤回傳相同訊息
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body     dto.LoginRequest true "登入資料"
// @Success     200     {object} dto.AuthResponse
// @Failure     400     {object} dto.HTTPError
// @Failure     401     {object} dto.HTTPError
// @Failure     500     {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return handler.Fail(c, http.StatusBadRequest, "invalid request body")
		}
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if err := c.Validate(&req); err != nil {
			return handler.Fail(c, http.StatusBadRequest, handler.ValidationMessage(err))
		}

		// 撈使用者資料
		user, err := getUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			if store.IsNotFound(err) {
				return handler.Fail(c, http.StatusUnauthorized, invalidCredentials)
			}
			return handler.InternalError(c, err, "failed to log in")
		}

		// 驗證密碼
		if err := authenticateUser(wp, *user, req.Password); err != nil {
			return handler.Fail(c, http.StatusUnauthorized, invalidCredentials)
		}

		token, err := issueAccessToken(user.ID, service.AccessTokenTTL)
		if err != nil {
			return handler.InternalError(c, err, "failed to issue token")
		}

		return c.JSON(http.StatusOK, dto.AuthResponse{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
			Token: token,
		})
	}
}
