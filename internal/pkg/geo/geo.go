package geo

import (
	"fmt"
	"math"
	"net/http"

	"github.com/nyc-parking-api/internal/pkg/errors"
)

const earthRadiusMeters = 6371000.0

// Границы NYC: запросы за пределами этого bounding box отклоняются
const (
	NYCLatMin = 40.4774
	NYCLatMax = 40.9176
	NYCLonMin = -74.2591
	NYCLonMax = -73.7004
)

// HaversineDistance вычисляет расстояние между двумя точками в метрах
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// InNYCBounds проверяет, что точка лежит внутри bounding box NYC
func InNYCBounds(lat, lon float64) bool {
	return lat >= NYCLatMin && lat <= NYCLatMax &&
		lon >= NYCLonMin && lon <= NYCLonMax
}

// ValidateNYCCoordinates - валидация координат против bounding box NYC.
// Возвращает ошибку с нарушенной границей и её допустимым диапазоном.
func ValidateNYCCoordinates(lat, lon float64) *errors.AppError {
	if lat < NYCLatMin || lat > NYCLatMax {
		return errors.New(
			errors.CodeValidationError,
			fmt.Sprintf("Latitude must be within NYC bounds (%g to %g)", NYCLatMin, NYCLatMax),
			http.StatusBadRequest,
		).WithDetails(map[string]interface{}{
			"field": "lat",
			"value": lat,
			"min":   NYCLatMin,
			"max":   NYCLatMax,
		})
	}

	if lon < NYCLonMin || lon > NYCLonMax {
		return errors.New(
			errors.CodeValidationError,
			fmt.Sprintf("Longitude must be within NYC bounds (%g to %g)", NYCLonMin, NYCLonMax),
			http.StatusBadRequest,
		).WithDetails(map[string]interface{}{
			"field": "lon",
			"value": lon,
			"min":   NYCLonMin,
			"max":   NYCLonMax,
		})
	}

	return nil
}

// ValidateRadius проверяет радиус поиска против допустимого диапазона в метрах
func ValidateRadius(radius, min, max float64) *errors.AppError {
	if radius < min || radius > max {
		return errors.New(
			errors.CodeValidationError,
			fmt.Sprintf("Radius must be between %g and %g meters", min, max),
			http.StatusBadRequest,
		).WithDetails(map[string]interface{}{
			"field": "radius",
			"value": radius,
			"min":   min,
			"max":   max,
		})
	}
	return nil
}

// RoundDistance округляет расстояние до 0.1 метра для ответов API
func RoundDistance(meters float64) float64 {
	return math.Round(meters*10) / 10
}
