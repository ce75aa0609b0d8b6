package opendata

import (
	"fmt"
	"strconv"
)

// Приближённая линейная конверсия NY State Plane (EPSG:2263) -> lat/lon
// для датасета знаков, где есть только sign_x_coord/sign_y_coord.
const (
	statePlaneXOffset = 913200.0
	statePlaneYOffset = 120000.0
	statePlaneXScale  = 364000.0
	statePlaneYScale  = 274000.0
	nycBaseLat        = 40.7128
	nycBaseLon        = -74.0060
)

// stringField возвращает первое непустое строковое значение из перечисленных колонок
func stringField(row map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := row[key]; ok {
			switch s := v.(type) {
			case string:
				if s != "" {
					return s
				}
			case float64:
				return strconv.FormatFloat(s, 'f', -1, 64)
			}
		}
	}
	return ""
}

// numericField разбирает числовую колонку; Socrata отдаёт числа строками
func numericField(row map[string]interface{}, key string) (float64, bool) {
	v, ok := row[key]
	if !ok {
		return 0, false
	}

	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// extractSignCoordinates достаёт координаты знака: сперва latitude/longitude,
// иначе приближённая конверсия из State Plane координат.
func extractSignCoordinates(row map[string]interface{}) (float64, float64, bool) {
	if lat, ok := numericField(row, "latitude"); ok {
		if lon, ok := numericField(row, "longitude"); ok {
			return lat, lon, true
		}
	}

	x, okX := numericField(row, "sign_x_coord")
	y, okY := numericField(row, "sign_y_coord")
	if !okX || !okY {
		return 0, 0, false
	}

	lon := nycBaseLon + (x-statePlaneXOffset)/statePlaneXScale
	lat := nycBaseLat + (y-statePlaneYOffset)/statePlaneYScale
	return lat, lon, true
}

// extraAttributes собирает остальные колонки строки в открытую схему записи
func extraAttributes(row map[string]interface{}, skip ...string) map[string]string {
	skipSet := make(map[string]bool, len(skip))
	for _, key := range skip {
		skipSet[key] = true
	}

	attrs := make(map[string]string)
	for key, v := range row {
		if skipSet[key] {
			continue
		}
		switch s := v.(type) {
		case string:
			attrs[key] = s
		case float64:
			attrs[key] = strconv.FormatFloat(s, 'f', -1, 64)
		case bool:
			attrs[key] = fmt.Sprintf("%t", s)
		}
	}

	if len(attrs) == 0 {
		return nil
	}
	return attrs
}
