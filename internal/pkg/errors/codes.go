package errors

import (
	"fmt"
	"net/http"
)

const (
	CodeParseError      = "PARSE_ERROR"
	CodeValidationError = "VALIDATION_ERROR"
)

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrUpstreamError = New(
		"UPSTREAM_ERROR",
		"NYC Open Data request failed",
		http.StatusBadGateway,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// NewParseError - ошибка разбора числового параметра, называет поле и значение
func NewParseError(field, value string) *AppError {
	return New(
		CodeParseError,
		fmt.Sprintf("Invalid numeric value for %s: %q", field, value),
		http.StatusBadRequest,
	).WithDetails(map[string]interface{}{
		"field": field,
		"value": value,
	})
}

// NewMissingParamsError - отсутствуют обязательные параметры запроса
func NewMissingParamsError(params, example string) *AppError {
	return New(
		"MISSING_PARAMETERS",
		fmt.Sprintf("Missing required parameters: %s", params),
		http.StatusBadRequest,
	).WithDetails(map[string]interface{}{
		"example": example,
	})
}

// NewValidationError - значение вне допустимого диапазона, называет поле и границы
func NewValidationError(field string, value, min, max float64) *AppError {
	return New(
		CodeValidationError,
		fmt.Sprintf("%s must be within bounds (%g to %g)", field, min, max),
		http.StatusBadRequest,
	).WithDetails(map[string]interface{}{
		"field": field,
		"value": value,
		"min":   min,
		"max":   max,
	})
}
