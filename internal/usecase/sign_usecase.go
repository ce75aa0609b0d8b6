package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/nyc-parking-api/internal/domain/repository"
	"github.com/nyc-parking-api/internal/pkg/geo"
	"github.com/nyc-parking-api/internal/usecase/dto"
)

// Допустимый диапазон радиуса поиска знаков, метры
const (
	MinSignRadius = 10.0
	MaxSignRadius = 1000.0
)

// SignUseCase - use case поиска знаков парковки в радиусе точки
type SignUseCase struct {
	signRepo      repository.SignRepository
	logger        *zap.Logger
	defaultRadius float64
}

// NewSignUseCase - создание нового SignUseCase
func NewSignUseCase(
	signRepo repository.SignRepository,
	logger *zap.Logger,
	defaultRadius float64,
) *SignUseCase {
	if defaultRadius == 0 {
		defaultRadius = 100
	}
	return &SignUseCase{
		signRepo:      signRepo,
		logger:        logger,
		defaultRadius: defaultRadius,
	}
}

// FindNearby возвращает знаки в радиусе точки, отсортированные по расстоянию.
// Чистая функция над снапшотом таблицы: параллельные запросы не требуют
// дополнительной синхронизации.
func (uc *SignUseCase) FindNearby(ctx context.Context, req dto.SignSearchRequest) (*dto.SignSearchResponse, error) {
	if err := geo.ValidateNYCCoordinates(req.Lat, req.Lon); err != nil {
		return nil, err
	}

	// Значение по умолчанию только при отсутствии параметра: явный радиус,
	// включая 0, обязан пройти проверку диапазона.
	radius := uc.defaultRadius
	if req.Radius != nil {
		radius = *req.Radius
	}
	if err := geo.ValidateRadius(radius, MinSignRadius, MaxSignRadius); err != nil {
		return nil, err
	}

	signs := uc.signRepo.Snapshot()
	matches := geo.FindWithinRadius(req.Lat, req.Lon, radius, signs)

	results := make([]dto.SignResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, dto.SignResult{
			SignID:          m.Record.SignID,
			SignDescription: m.Record.SignDescription,
			Latitude:        m.Record.Latitude,
			Longitude:       m.Record.Longitude,
			DistanceMeters:  geo.RoundDistance(m.DistanceMeters),
			StreetName:      m.Record.StreetName,
			CrossStreet:     m.Record.CrossStreet,
			Borough:         m.Record.Borough,
		})
	}

	uc.logger.Debug("Parking signs search completed",
		zap.Float64("lat", req.Lat),
		zap.Float64("lon", req.Lon),
		zap.Float64("radius", radius),
		zap.Int("found", len(results)))

	return &dto.SignSearchResponse{
		Query: dto.CoordinateQuery{
			Latitude:     req.Lat,
			Longitude:    req.Lon,
			RadiusMeters: &radius,
		},
		Results: dto.SignResults{
			Count: len(results),
			Signs: results,
		},
	}, nil
}
