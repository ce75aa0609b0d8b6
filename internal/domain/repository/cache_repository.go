package repository

import (
	"context"
	"time"

	"github.com/nyc-parking-api/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetTrends получает агрегацию нарушений из кеша (nil = cache miss)
	GetTrends(ctx context.Context, borough string, year int) (*domain.ViolationTrends, error)

	// SetTrends сохраняет агрегацию нарушений в кеше
	SetTrends(ctx context.Context, borough string, year int, trends *domain.ViolationTrends, ttl time.Duration) error

	// InvalidateTrends сбрасывает все закешированные агрегации
	InvalidateTrends(ctx context.Context) error

	// GetStatus получает сводку источников данных из кеша (nil = cache miss)
	GetStatus(ctx context.Context) (*domain.DataStatus, error)

	// SetStatus сохраняет сводку источников данных в кеше
	SetStatus(ctx context.Context, status *domain.DataStatus, ttl time.Duration) error
}
