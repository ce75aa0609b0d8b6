package domain

import "time"

// SourceStatus - состояние одного источника данных
type SourceStatus struct {
	TotalCount    int       `json:"total_count"`
	LastUpdated   time.Time `json:"last_updated"`
	CoverageAreas []string  `json:"coverage_areas,omitempty"`
}

// ViolationStatus - состояние данных о нарушениях
type ViolationStatus struct {
	TotalCount  int       `json:"total_count"`
	LastUpdated time.Time `json:"last_updated"`
	DateRange   DateRange `json:"date_range"`
}

// DataStatus - сводное состояние всех источников данных
type DataStatus struct {
	ParkingSigns SourceStatus    `json:"parking_signs"`
	MeterRates   SourceStatus    `json:"meter_rates"`
	Violations   ViolationStatus `json:"violations"`
}
