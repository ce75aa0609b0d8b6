package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nyc-parking-api/internal/domain"
	"github.com/nyc-parking-api/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	trendsKeyPrefix = "trends:"
	statusKey       = "status:data"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

func trendsKey(borough string, year int) string {
	if borough == "" {
		borough = "all"
	}
	return fmt.Sprintf("%s%s:%d", trendsKeyPrefix, borough, year)
}

// GetTrends получает агрегацию нарушений из кеша
func (r *cacheRepository) GetTrends(ctx context.Context, borough string, year int) (*domain.ViolationTrends, error) {
	data, err := r.Get(ctx, trendsKey(borough, year))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var trends domain.ViolationTrends
	if err := json.Unmarshal(data, &trends); err != nil {
		r.logger.Error("Failed to unmarshal trends from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal trends: %w", err)
	}

	return &trends, nil
}

// SetTrends сохраняет агрегацию нарушений в кеше
func (r *cacheRepository) SetTrends(ctx context.Context, borough string, year int, trends *domain.ViolationTrends, ttl time.Duration) error {
	data, err := json.Marshal(trends)
	if err != nil {
		r.logger.Error("Failed to marshal trends", zap.Error(err))
		return fmt.Errorf("marshal trends: %w", err)
	}

	return r.Set(ctx, trendsKey(borough, year), data, ttl)
}

// GetStatus получает сводку источников данных из кеша
func (r *cacheRepository) GetStatus(ctx context.Context) (*domain.DataStatus, error) {
	data, err := r.Get(ctx, statusKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var status domain.DataStatus
	if err := json.Unmarshal(data, &status); err != nil {
		r.logger.Error("Failed to unmarshal status from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal status: %w", err)
	}

	return &status, nil
}

// SetStatus сохраняет сводку источников данных в кеше
func (r *cacheRepository) SetStatus(ctx context.Context, status *domain.DataStatus, ttl time.Duration) error {
	data, err := json.Marshal(status)
	if err != nil {
		r.logger.Error("Failed to marshal status", zap.Error(err))
		return fmt.Errorf("marshal status: %w", err)
	}

	return r.Set(ctx, statusKey, data, ttl)
}

// InvalidateTrends сбрасывает все закешированные агрегации.
// Вызывается после загрузки новых нарушений.
func (r *cacheRepository) InvalidateTrends(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, trendsKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			r.logger.Warn("Failed to delete trends key", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan trends keys: %w", err)
	}

	r.logger.Debug("Trends cache invalidated")
	return nil
}
