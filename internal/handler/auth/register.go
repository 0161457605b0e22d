// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/database"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/dto"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/handler"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/model"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/service"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/store"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/worker"
)

// RegisterHandler 註冊新使用者並回傳存取令牌
// @Summary     Register a new user
// @Description 建立帳號 (Email 會自動轉小寫)；系統只允許一位 admin
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body     dto.RegisterRequest true "註冊資料"
// @Success     201     {object} dto.AuthResponse
// @Failure     400     {object} dto.HTTPError
// @Failure     500     {object} dto.HTTPError
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return handler.Fail(c, http.StatusBadRequest, "invalid request body")
		}
		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if err := c.Validate(&req); err != nil {
			return handler.Fail(c, http.StatusBadRequest, handler.ValidationMessage(err))
		}
		if req.Role == "" {
			req.Role = model.RoleUser
		}

		ctx := c.Request().Context()

		if req.Role == model.RoleAdmin {
			exists, err := adminExists(ctx, db)
			if err != nil {
				return handler.InternalError(c, err, "failed to register user")
			}
			if exists {
				return handler.Fail(c, http.StatusBadRequest, "Admin already exists")
			}
		}

		if _, err := getUserByEmail(ctx, db, req.Email); err == nil {
			return handler.Fail(c, http.StatusBadRequest, "User already exists")
		} else if !store.IsNotFound(err) {
			return handler.InternalError(c, err, "failed to register user")
		}

		hash, err := hashPassword(wp, req.Password)
		if err != nil {
			return handler.InternalError(c, err, "failed to hash password")
		}

		user, err := createUser(ctx, db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         req.Role,
		})
		switch {
		case errors.Is(err, store.ErrEmailTaken):
			return handler.Fail(c, http.StatusBadRequest, "User already exists")
		case errors.Is(err, store.ErrAdminExists):
			return handler.Fail(c, http.StatusBadRequest, "Admin already exists")
		case err != nil:
			return handler.InternalError(c, err, "failed to register user")
		}

		token, err := issueAccessToken(user.ID, service.AccessTokenTTL)
		if err != nil {
			return handler.InternalError(c, err, "failed to issue token")
		}

		return c.JSON(http.StatusCreated, dto.AuthResponse{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
			Token: token,
		})
	}
}
