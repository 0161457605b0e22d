package middleware

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/cache"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/database"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/model"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/service"
)

const ContextUserKey = "user"

const notAuthorizedMessage = "Not authorized to access this route"

var (
	verifyAccessToken = service.VerifyAccessToken
	loadIdentity      = service.LoadIdentity
)

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return nil, fmt.Errorf("invalid authorization header format")
	}
	claims, err := verifyAccessToken(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	return claims, nil
}

// RequireAuth 驗證 Bearer JWT 並載入使用者（含角色），存入 ContextUserKey
func RequireAuth(db database.DB, cch cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			claims, err := extractClaims(c)
			if err != nil {
				zerolog.Ctx(ctx).Debug().Err(err).Msg("rejecting request")
				return echo.NewHTTPError(http.StatusUnauthorized, notAuthorizedMessage)
			}
			user, err := loadIdentity(ctx, db, cch, claims.UserID)
			if err != nil {
				zerolog.Ctx(ctx).Debug().Err(err).Str("user_id", claims.UserID.String()).Msg("token user not loadable")
				return echo.NewHTTPError(http.StatusUnauthorized, notAuthorizedMessage)
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// Authorize 限制只有指定角色可存取，必須放在 RequireAuth 之後
func Authorize(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, notAuthorizedMessage)
			}
			if !slices.Contains(roles, user.Role) {
				return echo.NewHTTPError(http.StatusForbidden,
					fmt.Sprintf("User role %s is not authorized to access this route", user.Role))
			}
			return next(c)
		}
	}
}

// CurrentUser 取出 RequireAuth 放入的使用者
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
