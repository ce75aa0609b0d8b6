package repository

import (
	"context"

	"github.com/nyc-parking-api/internal/domain"
)

// DatasetProbe - результат тестового запроса к одному датасету Socrata
type DatasetProbe struct {
	URL        string `json:"url"`
	StatusCode int    `json:"status_code"`
	DataLength int    `json:"data_length"`
	Error      string `json:"error,omitempty"`
}

// OpenDataRepository - клиент датасетов NYC Open Data (Socrata)
type OpenDataRepository interface {
	// FetchParkingSigns загружает знаки парковки (до limit записей)
	FetchParkingSigns(ctx context.Context, limit int) ([]domain.ParkingSign, error)

	// FetchMeterZones загружает паркоматы (до limit записей)
	FetchMeterZones(ctx context.Context, limit int) ([]domain.MeterZone, error)

	// FetchViolations загружает сырые записи о нарушениях (до limit записей)
	FetchViolations(ctx context.Context, limit int) ([]domain.Violation, error)

	// Probe делает тестовые запросы с $limit=10 к датасетам знаков и паркоматов
	Probe(ctx context.Context) map[string]DatasetProbe
}
