package dto

import "github.com/nyc-parking-api/internal/domain"

// CoordinateQuery - эхо параметров запроса в ответе
type CoordinateQuery struct {
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	RadiusMeters *float64 `json:"radius_meters,omitempty"`
}

// SignResult - знак парковки с расстоянием до точки запроса
type SignResult struct {
	SignID          string  `json:"sign_id,omitempty"`
	SignDescription string  `json:"sign_description"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	DistanceMeters  float64 `json:"distance_meters"`
	StreetName      string  `json:"street_name"`
	CrossStreet     string  `json:"cross_street,omitempty"`
	Borough         string  `json:"borough"`
}

// SignResults - найденные знаки с количеством
type SignResults struct {
	Count int          `json:"count"`
	Signs []SignResult `json:"signs"`
}

// SignSearchResponse - ответ поиска знаков
type SignSearchResponse struct {
	Query   CoordinateQuery `json:"query"`
	Results SignResults     `json:"results"`
}

// MeterResult - ближайший паркомат
type MeterResult struct {
	MeterNumber    string  `json:"meter_number"`
	OnStreet       string  `json:"on_street"`
	MeterHours     string  `json:"meter_hours"`
	Borough        string  `json:"borough"`
	DistanceMeters float64 `json:"distance_meters"`
	Status         string  `json:"status"`
}

// MeterSearchResponse - ответ поиска паркомата; Result=null когда рядом ничего нет
type MeterSearchResponse struct {
	Query   CoordinateQuery `json:"query"`
	Result  *MeterResult    `json:"result"`
	Message string          `json:"message,omitempty"`
}

// ViolationFilters - применённые фильтры поиска нарушений
type ViolationFilters struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Limit     int    `json:"limit"`
}

// ViolationResults - найденные нарушения с количеством
type ViolationResults struct {
	Count      int                            `json:"count"`
	Violations []domain.ViolationWithDistance `json:"violations"`
}

// ViolationSearchResponse - ответ поиска нарушений в радиусе
type ViolationSearchResponse struct {
	Query   CoordinateQuery  `json:"query"`
	Filters ViolationFilters `json:"filters"`
	Results ViolationResults `json:"results"`
}

// LoadSampleDataResponse - результат генерации синтетических нарушений
type LoadSampleDataResponse struct {
	Message    string `json:"message"`
	SampleSize int    `json:"sample_size"`
}

// LoadRealViolationsResponse - результат загрузки нарушений из NYC Open Data
type LoadRealViolationsResponse struct {
	Message             string `json:"message"`
	RequestedLimit      int    `json:"requested_limit"`
	TotalViolationsInDB int    `json:"total_violations_in_db"`
	DataSource          string `json:"data_source"`
}

// ReloadSignsResponse - результат перезагрузки знаков
type ReloadSignsResponse struct {
	Message    string `json:"message"`
	Success    bool   `json:"success"`
	SignsCount int    `json:"signs_count"`
}
