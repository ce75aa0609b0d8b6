package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/nyc-parking-api/internal/pkg/errors"
)

// requireCoordinates извлекает обязательные lat/lon из query-параметров.
// Отсутствие параметров и нечисловые значения - разные ошибки: клиент
// должен видеть, какое именно поле не разобралось.
func requireCoordinates(c *fiber.Ctx, example string) (lat, lon float64, appErr *errors.AppError) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		return 0, 0, errors.NewMissingParamsError("lat, lon", example)
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, errors.NewParseError("lat", latStr)
	}

	lon, err = strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return 0, 0, errors.NewParseError("lon", lonStr)
	}

	return lat, lon, nil
}

// optionalFloatQuery разбирает необязательный числовой query-параметр.
// nil означает, что параметр не передан: явное значение (в том числе 0)
// уходит на валидацию как есть, а не подменяется значением по умолчанию.
func optionalFloatQuery(c *fiber.Ctx, name string) (*float64, *errors.AppError) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.NewParseError(name, raw)
	}
	return &value, nil
}

// optionalIntQuery разбирает необязательный целочисленный query-параметр (nil = не задан)
func optionalIntQuery(c *fiber.Ctx, name string) (*int, *errors.AppError) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.NewParseError(name, raw)
	}
	return &value, nil
}

// intOrZero разворачивает необязательный параметр для полей, где 0 означает
// отсутствие фильтра (например, год в агрегации нарушений)
func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
