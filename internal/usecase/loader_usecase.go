package usecase

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nyc-parking-api/internal/config"
	"github.com/nyc-parking-api/internal/domain"
	"github.com/nyc-parking-api/internal/domain/repository"
	"github.com/nyc-parking-api/internal/pkg/errors"
	"github.com/nyc-parking-api/internal/pkg/geo"
	"github.com/nyc-parking-api/internal/usecase/dto"
)

// Тексты знаков для синтетического датасета
var sampleSignTexts = []string{
	"NO PARKING 8AM-6PM MON THRU FRI",
	"NO STANDING ANYTIME",
	"2 HOUR PARKING 9AM-7PM EXCEPT SUNDAY",
	"NO PARKING STREET CLEANING MON & THURS 11AM-12:30PM",
	"1 HOUR METERED PARKING 8AM-7PM EXCEPT SUNDAY",
	"NO STOPPING ANYTIME",
	"NO PARKING 11PM-7AM",
	"TRUCK LOADING ONLY 7AM-6PM MON THRU FRI",
	"NO STANDING 7AM-10AM EXCEPT SUNDAY",
	"AUTHORIZED VEHICLES ONLY",
}

// LoaderUseCase - загрузка знаков и паркоматов из NYC Open Data
// в in-memory таблицы, с генерацией синтетики при недоступности источника
type LoaderUseCase struct {
	signRepo     repository.SignRepository
	meterRepo    repository.MeterRepository
	openDataRepo repository.OpenDataRepository
	logger       *zap.Logger
	dataCfg      config.DataConfig
	maxRecords   int
}

// NewLoaderUseCase - создание нового LoaderUseCase
func NewLoaderUseCase(
	signRepo repository.SignRepository,
	meterRepo repository.MeterRepository,
	openDataRepo repository.OpenDataRepository,
	logger *zap.Logger,
	cfg *config.Config,
) *LoaderUseCase {
	return &LoaderUseCase{
		signRepo:     signRepo,
		meterRepo:    meterRepo,
		openDataRepo: openDataRepo,
		logger:       logger,
		dataCfg:      cfg.Data,
		maxRecords:   cfg.OpenData.MaxRecordsPerRequest,
	}
}

// LoadParkingSigns загружает знаки из NYC Open Data. При ошибке или пустом
// ответе и включённом DATA_FALLBACK_TO_SAMPLE таблица заполняется синтетикой.
func (uc *LoaderUseCase) LoadParkingSigns(ctx context.Context) error {
	signs, err := uc.openDataRepo.FetchParkingSigns(ctx, uc.maxRecords)
	if err != nil || len(signs) == 0 {
		if err != nil {
			uc.logger.Warn("Failed to fetch parking signs from NYC Open Data", zap.Error(err))
		} else {
			uc.logger.Warn("NYC Open Data returned no parking signs with coordinates")
		}

		if !uc.dataCfg.FallbackToSample {
			if err != nil {
				return errors.ErrUpstreamError
			}
			return nil
		}

		signs = uc.GenerateSampleSigns(uc.dataCfg.SampleSignCount)
		uc.logger.Info("Loaded sample parking signs as fallback", zap.Int("count", len(signs)))
	} else {
		uc.logger.Info("Loaded parking signs from NYC Open Data", zap.Int("count", len(signs)))
	}

	uc.signRepo.Replace(signs)
	return nil
}

// LoadMeterZones загружает паркоматы из NYC Open Data
func (uc *LoaderUseCase) LoadMeterZones(ctx context.Context) error {
	meters, err := uc.openDataRepo.FetchMeterZones(ctx, uc.maxRecords)
	if err != nil {
		uc.logger.Warn("Failed to fetch meter zones from NYC Open Data", zap.Error(err))
		return errors.ErrUpstreamError
	}

	uc.logger.Info("Loaded meter zones from NYC Open Data", zap.Int("count", len(meters)))
	uc.meterRepo.Replace(meters)
	return nil
}

// LoadAll загружает оба датасета. Ошибки не фатальны: сервис стартует
// и с частично заполненными таблицами.
func (uc *LoaderUseCase) LoadAll(ctx context.Context) {
	if err := uc.LoadParkingSigns(ctx); err != nil {
		uc.logger.Error("Parking signs load failed", zap.Error(err))
	}
	if err := uc.LoadMeterZones(ctx); err != nil {
		uc.logger.Error("Meter zones load failed", zap.Error(err))
	}
}

// ReloadSigns принудительно перезагружает таблицу знаков. Если после
// перезагрузки таблица всё ещё пуста, заполняет её синтетикой.
func (uc *LoaderUseCase) ReloadSigns(ctx context.Context) *dto.ReloadSignsResponse {
	if err := uc.LoadParkingSigns(ctx); err != nil {
		uc.logger.Warn("Reload from NYC Open Data failed", zap.Error(err))
	}

	if uc.signRepo.Count() == 0 {
		uc.signRepo.Replace(uc.GenerateSampleSigns(uc.dataCfg.SampleSignCount))
	}

	count := uc.signRepo.Count()
	return &dto.ReloadSignsResponse{
		Message:    fmt.Sprintf("Parking signs reloaded, %d signs available", count),
		Success:    count > 0,
		SignsCount: count,
	}
}

// GenerateSampleSigns генерирует синтетические знаки со случайными
// координатами внутри bounding box NYC
func (uc *LoaderUseCase) GenerateSampleSigns(count int) []domain.ParkingSign {
	if count <= 0 {
		count = 1000
	}

	signs := make([]domain.ParkingSign, 0, count)
	for i := 0; i < count; i++ {
		lat := geo.NYCLatMin + rand.Float64()*(geo.NYCLatMax-geo.NYCLatMin)
		lon := geo.NYCLonMin + rand.Float64()*(geo.NYCLonMax-geo.NYCLonMin)

		signs = append(signs, domain.ParkingSign{
			Latitude:        lat,
			Longitude:       lon,
			SignID:          fmt.Sprintf("SAMPLE-%s", uuid.NewString()),
			SignDescription: sampleSignTexts[i%len(sampleSignTexts)],
			StreetName:      fmt.Sprintf("Sample Street %d", i%100),
			CrossStreet:     fmt.Sprintf("Cross Street %d", i%50),
			Borough:         domain.Boroughs[i%len(domain.Boroughs)],
		})
	}
	return signs
}
