package utils

import (
	"fmt"
	"net/http"

	validatorlib "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/nyc-parking-api/internal/pkg/errors"
)

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

func SendJSON(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Ошибки struct-валидации - это ошибки клиента
	if fieldErrs, ok := err.(validatorlib.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		appErr := errors.New(
			errors.CodeValidationError,
			fmt.Sprintf("Invalid value for %s (%s)", fe.Field(), fe.Tag()),
			http.StatusBadRequest,
		).WithDetails(map[string]interface{}{
			"field": fe.Field(),
			"rule":  fe.Tag(),
			"param": fe.Param(),
		})
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{Error: appErr})
	}

	// Unknown error - return 500
	return c.Status(500).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
