package repository

import (
	"context"

	"github.com/nyc-parking-api/internal/domain"
)

// ViolationRepository - хранилище нарушений парковки
type ViolationRepository interface {
	// InitSchema создаёт таблицу violations если её нет
	InitSchema(ctx context.Context) error

	// GetTrends возвращает топ-10 типов нарушений; borough="" и year=0 означают без фильтра
	GetTrends(ctx context.Context, borough string, year int) (*domain.ViolationTrends, error)

	// FindNearby возвращает нарушения в радиусе, отсортированные по расстоянию
	FindNearby(ctx context.Context, q domain.ViolationQuery) ([]domain.ViolationWithDistance, error)

	// Count возвращает общее количество нарушений
	Count(ctx context.Context) (int, error)

	// DateRange возвращает минимальную и максимальную issue_date
	DateRange(ctx context.Context) (*domain.DateRange, error)

	// InsertBatch вставляет нарушения, upsert по summons_number.
	// Возвращает количество обработанных записей.
	InsertBatch(ctx context.Context, violations []domain.Violation) (int, error)
}
