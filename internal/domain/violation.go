package domain

// Violation - запись о нарушении парковки (таблица violations)
type Violation struct {
	ID                   int64    `json:"-" db:"id"`
	SummonsNumber        string   `json:"summons_number" db:"summons_number"`
	PlateID              string   `json:"plate_id,omitempty" db:"plate_id"`
	RegistrationState    string   `json:"registration_state,omitempty" db:"registration_state"`
	PlateType            string   `json:"plate_type,omitempty" db:"plate_type"`
	IssueDate            string   `json:"issue_date" db:"issue_date"`
	ViolationCode        string   `json:"violation_code,omitempty" db:"violation_code"`
	VehicleBodyType      string   `json:"vehicle_body_type,omitempty" db:"vehicle_body_type"`
	VehicleMake          string   `json:"vehicle_make,omitempty" db:"vehicle_make"`
	IssuingAgency        string   `json:"issuing_agency,omitempty" db:"issuing_agency"`
	StreetName           string   `json:"street_name,omitempty" db:"street_name"`
	IntersectingStreet   string   `json:"intersecting_street,omitempty" db:"intersecting_street"`
	ViolationLocation    string   `json:"violation_location,omitempty" db:"violation_location"`
	ViolationDescription string   `json:"violation_description" db:"violation_description"`
	ViolationCounty      string   `json:"violation_county,omitempty" db:"violation_county"`
	Borough              string   `json:"borough" db:"borough"`
	FineAmount           float64  `json:"fine_amount" db:"fine_amount"`
	Latitude             *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude            *float64 `json:"longitude,omitempty" db:"longitude"`
}

// ViolationWithDistance - нарушение с расстоянием до точки запроса
type ViolationWithDistance struct {
	Violation
	DistanceMeters float64 `json:"distance_meters" db:"distance_meters"`
}

// ViolationQuery - параметры поиска нарушений в радиусе
type ViolationQuery struct {
	Lat          float64
	Lon          float64
	RadiusMeters float64
	StartDate    string // YYYY-MM-DD, пустая строка = без фильтра
	EndDate      string
	Limit        int
}

// ViolationTrend - агрегат по одному типу нарушения
type ViolationTrend struct {
	ViolationType string  `json:"violation_type" db:"violation_type"`
	Count         int     `json:"count" db:"violation_count"`
	AvgFine       float64 `json:"avg_fine" db:"avg_fine"`
}

// TrendFilters - применённые фильтры агрегации
type TrendFilters struct {
	Borough *string `json:"borough"`
	Year    *int    `json:"year"`
}

// ViolationTrends - топ типов нарушений с итоговым количеством
type ViolationTrends struct {
	Trends          []ViolationTrend `json:"trends"`
	TotalViolations int              `json:"total_violations"`
	Filters         TrendFilters     `json:"filters"`
}

// DateRange - диапазон дат выписанных нарушений
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
