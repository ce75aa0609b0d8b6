package repository

import (
	"time"

	"github.com/nyc-parking-api/internal/domain"
)

// SignRepository - in-memory таблица знаков парковки.
// Replace заменяет таблицу целиком; читатели через Snapshot видят либо
// старую, либо новую таблицу, никогда частичную.
type SignRepository interface {
	// Replace атомарно заменяет все записи
	Replace(signs []domain.ParkingSign)

	// Snapshot возвращает текущий срез записей для чтения
	Snapshot() []domain.ParkingSign

	// Count возвращает количество загруженных записей
	Count() int

	// UpdatedAt возвращает время последней замены таблицы
	UpdatedAt() time.Time
}
