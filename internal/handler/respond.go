package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/dto"
)

// Fail 回傳 {"message": msg}
func Fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, dto.HTTPError{Message: msg})
}

// InternalError 記錄實際錯誤，對外只回傳 msg
func InternalError(c echo.Context, err error, msg string) error {
	zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg(msg)
	return Fail(c, http.StatusInternalServerError, msg)
}

// ValidationMessage 將 validator 錯誤轉成使用者看得懂的訊息，多筆以 ", " 串接
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, ", ")
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		if field == "email" {
			return "Please add an email"
		}
		return "Please add a " + field
	case "email":
		return "Please add a valid email"
	case "max":
		return fmt.Sprintf("%s can not be more than %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return fe.Error()
}
