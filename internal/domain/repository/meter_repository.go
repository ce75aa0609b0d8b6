package repository

import (
	"time"

	"github.com/nyc-parking-api/internal/domain"
)

// MeterRepository - in-memory таблица паркоматов (семантика как у SignRepository)
type MeterRepository interface {
	Replace(meters []domain.MeterZone)
	Snapshot() []domain.MeterZone
	Count() int
	UpdatedAt() time.Time
}
