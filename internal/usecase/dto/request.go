package dto

// SignSearchRequest - запрос поиска знаков в радиусе точки.
// Radius == nil означает отсутствие параметра: явный радиус, включая 0,
// проходит валидацию диапазона без подстановки значения по умолчанию.
type SignSearchRequest struct {
	Lat    float64  `json:"lat"`
	Lon    float64  `json:"lon"`
	Radius *float64 `json:"radius"`
}

// MeterSearchRequest - запрос ближайшего паркомата
type MeterSearchRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// TrendsRequest - запрос агрегации нарушений
type TrendsRequest struct {
	Borough string `json:"borough"`
	Year    int    `json:"year"`
}

// ViolationSearchRequest - запрос поиска нарушений в радиусе.
// Nil-поля означают отсутствие параметра (как и в SignSearchRequest).
type ViolationSearchRequest struct {
	Lat       float64  `json:"lat"`
	Lon       float64  `json:"lon"`
	Radius    *float64 `json:"radius"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Limit     *int     `json:"limit"`
}

// LoadSampleDataRequest - запрос генерации синтетических нарушений.
// Указатель отличает отсутствующее поле (nil, берётся значение по умолчанию)
// от явного нуля, который должен провалить валидацию диапазона.
type LoadSampleDataRequest struct {
	SampleSize *int `json:"sample_size" validate:"omitempty,min=100,max=10000"`
}

// LoadRealViolationsRequest - запрос загрузки нарушений из NYC Open Data
type LoadRealViolationsRequest struct {
	Limit *int `json:"limit" validate:"omitempty,min=100,max=50000"`
}
