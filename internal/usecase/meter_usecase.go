package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/nyc-parking-api/internal/domain"
	"github.com/nyc-parking-api/internal/domain/repository"
	"github.com/nyc-parking-api/internal/pkg/geo"
	"github.com/nyc-parking-api/internal/usecase/dto"
)

// MeterUseCase - use case поиска ближайшего паркомата
type MeterUseCase struct {
	meterRepo    repository.MeterRepository
	logger       *zap.Logger
	searchRadius float64
}

// NewMeterUseCase - создание нового MeterUseCase.
// searchRadius ограничивает окно кандидатов (0 = без ограничения).
func NewMeterUseCase(
	meterRepo repository.MeterRepository,
	logger *zap.Logger,
	searchRadius float64,
) *MeterUseCase {
	return &MeterUseCase{
		meterRepo:    meterRepo,
		logger:       logger,
		searchRadius: searchRadius,
	}
}

// FindNearest возвращает ближайший к точке паркомат. Пустая таблица или
// отсутствие паркоматов в окне поиска - не ошибка: Result=null с сообщением.
func (uc *MeterUseCase) FindNearest(ctx context.Context, req dto.MeterSearchRequest) (*dto.MeterSearchResponse, error) {
	if err := geo.ValidateNYCCoordinates(req.Lat, req.Lon); err != nil {
		return nil, err
	}

	response := &dto.MeterSearchResponse{
		Query: dto.CoordinateQuery{
			Latitude:  req.Lat,
			Longitude: req.Lon,
		},
	}

	candidates := uc.meterRepo.Snapshot()
	if uc.searchRadius > 0 {
		windowed := geo.FindWithinRadius(req.Lat, req.Lon, uc.searchRadius, candidates)
		if len(windowed) == 0 {
			response.Message = "No meter zones found near this location"
			return response, nil
		}
		// Окно уже отсортировано по расстоянию
		nearest := windowed[0]
		response.Result = meterResult(nearest)
		return response, nil
	}

	nearest, ok := geo.FindNearest(req.Lat, req.Lon, candidates)
	if !ok {
		response.Message = "No meter zones found near this location"
		return response, nil
	}

	response.Result = meterResult(nearest)
	return response, nil
}

func meterResult(m geo.Match[domain.MeterZone]) *dto.MeterResult {
	return &dto.MeterResult{
		MeterNumber:    m.Record.MeterNumber,
		OnStreet:       m.Record.OnStreet,
		MeterHours:     m.Record.MeterHours,
		Borough:        m.Record.Borough,
		DistanceMeters: geo.RoundDistance(m.DistanceMeters),
		Status:         m.Record.Status,
	}
}
