package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nyc-parking-api/internal/domain"
	"github.com/nyc-parking-api/internal/domain/repository"
)

// StatusUseCase - сводное состояние источников данных
type StatusUseCase struct {
	signRepo      repository.SignRepository
	meterRepo     repository.MeterRepository
	violationRepo repository.ViolationRepository
	cacheRepo     repository.CacheRepository
	logger        *zap.Logger
	statusTTL     time.Duration
}

// NewStatusUseCase - создание нового StatusUseCase
func NewStatusUseCase(
	signRepo repository.SignRepository,
	meterRepo repository.MeterRepository,
	violationRepo repository.ViolationRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	statusTTL time.Duration,
) *StatusUseCase {
	return &StatusUseCase{
		signRepo:      signRepo,
		meterRepo:     meterRepo,
		violationRepo: violationRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
		statusTTL:     statusTTL,
	}
}

// GetDataStatus собирает счётчики и время обновления по всем источникам,
// используя кеш когда возможно. Ошибки БД и кеша не фатальны: блок нарушений
// возвращается с нулями, промах кеша ведёт к пересборке сводки.
func (uc *StatusUseCase) GetDataStatus(ctx context.Context) *domain.DataStatus {
	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetStatus(ctx)
	if err == nil && cached != nil {
		uc.logger.Debug("Data status fetched from cache")
		return cached
	}
	if err != nil {
		uc.logger.Warn("Failed to get data status from cache", zap.Error(err))
	}

	// 2. Собираем сводку по источникам
	status := &domain.DataStatus{
		ParkingSigns: domain.SourceStatus{
			TotalCount:    uc.signRepo.Count(),
			LastUpdated:   uc.signRepo.UpdatedAt(),
			CoverageAreas: domain.Boroughs,
		},
		MeterRates: domain.SourceStatus{
			TotalCount:    uc.meterRepo.Count(),
			LastUpdated:   uc.meterRepo.UpdatedAt(),
			CoverageAreas: domain.Boroughs,
		},
	}

	count, err := uc.violationRepo.Count(ctx)
	if err != nil {
		uc.logger.Warn("Failed to count violations for status", zap.Error(err))
	}
	status.Violations.TotalCount = count
	status.Violations.LastUpdated = time.Now()

	dateRange, err := uc.violationRepo.DateRange(ctx)
	if err != nil {
		uc.logger.Warn("Failed to get violations date range", zap.Error(err))
	}
	if dateRange != nil && dateRange.Start != "" {
		status.Violations.DateRange = *dateRange
	} else {
		status.Violations.DateRange = domain.DateRange{Start: "2020-01-01", End: "2024-12-31"}
	}

	// 3. Кешируем
	if err := uc.cacheRepo.SetStatus(ctx, status, uc.statusTTL); err != nil {
		uc.logger.Warn("Failed to cache data status", zap.Error(err))
		// Не возвращаем ошибку, сводка уже собрана
	}

	return status
}
