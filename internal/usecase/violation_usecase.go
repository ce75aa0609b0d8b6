package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nyc-parking-api/internal/domain"
	"github.com/nyc-parking-api/internal/domain/repository"
	"github.com/nyc-parking-api/internal/pkg/errors"
	"github.com/nyc-parking-api/internal/pkg/geo"
	"github.com/nyc-parking-api/internal/usecase/dto"
)

// Допустимые диапазоны параметров поиска и агрегации нарушений
const (
	MinViolationRadius     = 10.0
	MaxViolationRadius     = 5000.0
	DefaultViolationRadius = 1000.0
	MinTrendYear           = 2010
	MaxTrendYear           = 2025
	MaxViolationLimit      = 1000
	DefaultViolationLimit  = 100
)

// Синтетические нарушения для демонстрации (тип, штраф)
var sampleViolationTypes = []struct {
	Description string
	Fine        float64
}{
	{"NO PARKING-STREET CLEANING", 65},
	{"PHTO SCHOOL ZN SPEED VIOLATION", 50},
	{"FAIL TO DSPLY MUNI METER RECPT", 35},
	{"NO STANDING-DAY/TIME LIMITS", 115},
	{"EXPIRED MUNI METER", 35},
	{"NO PARKING-DAY/TIME LIMITS", 65},
	{"EXPIRED METER", 25},
	{"NO STANDING-BUS STOP", 115},
	{"DOUBLE PARKING", 115},
	{"FIRE HYDRANT", 115},
}

// ViolationUseCase - use case статистики и поиска нарушений
type ViolationUseCase struct {
	violationRepo repository.ViolationRepository
	cacheRepo     repository.CacheRepository
	openDataRepo  repository.OpenDataRepository
	logger        *zap.Logger
	trendsTTL     time.Duration
}

// NewViolationUseCase - создание нового ViolationUseCase
func NewViolationUseCase(
	violationRepo repository.ViolationRepository,
	cacheRepo repository.CacheRepository,
	openDataRepo repository.OpenDataRepository,
	logger *zap.Logger,
	trendsTTL time.Duration,
) *ViolationUseCase {
	return &ViolationUseCase{
		violationRepo: violationRepo,
		cacheRepo:     cacheRepo,
		openDataRepo:  openDataRepo,
		logger:        logger,
		trendsTTL:     trendsTTL,
	}
}

// GetTrends возвращает агрегацию нарушений, используя кеш когда возможно
func (uc *ViolationUseCase) GetTrends(ctx context.Context, req dto.TrendsRequest) (*domain.ViolationTrends, error) {
	borough := strings.ToUpper(strings.TrimSpace(req.Borough))
	if borough != "" && !domain.IsValidBorough(borough) {
		return nil, errors.New(
			errors.CodeValidationError,
			fmt.Sprintf("Invalid borough. Must be one of: %s", strings.Join(domain.Boroughs, ", ")),
			http.StatusBadRequest,
		).WithDetails(map[string]interface{}{
			"field": "borough",
			"value": req.Borough,
		})
	}

	if req.Year != 0 && (req.Year < MinTrendYear || req.Year > MaxTrendYear) {
		return nil, errors.NewValidationError("year", float64(req.Year), MinTrendYear, MaxTrendYear)
	}

	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetTrends(ctx, borough, req.Year)
	if err == nil && cached != nil {
		uc.logger.Debug("Violation trends fetched from cache",
			zap.String("borough", borough),
			zap.Int("year", req.Year))
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get trends from cache", zap.Error(err))
	}

	// 2. Получаем из БД
	trends, err := uc.violationRepo.GetTrends(ctx, borough, req.Year)
	if err != nil {
		uc.logger.Error("Failed to get violation trends", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	// 3. Кешируем
	if err := uc.cacheRepo.SetTrends(ctx, borough, req.Year, trends, uc.trendsTTL); err != nil {
		uc.logger.Warn("Failed to cache trends", zap.Error(err))
		// Не возвращаем ошибку, данные уже получены
	}

	return trends, nil
}

// FindNearby возвращает нарушения в радиусе точки с опциональным фильтром по датам
func (uc *ViolationUseCase) FindNearby(ctx context.Context, req dto.ViolationSearchRequest) (*dto.ViolationSearchResponse, error) {
	if err := geo.ValidateNYCCoordinates(req.Lat, req.Lon); err != nil {
		return nil, err
	}

	// Значения по умолчанию только при отсутствии параметров: явные radius=0
	// и limit=0 - ошибки валидации, а не запрос значений по умолчанию.
	radius := DefaultViolationRadius
	if req.Radius != nil {
		radius = *req.Radius
	}
	if err := geo.ValidateRadius(radius, MinViolationRadius, MaxViolationRadius); err != nil {
		return nil, err
	}

	limit := DefaultViolationLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	if limit < 1 || limit > MaxViolationLimit {
		return nil, errors.NewValidationError("limit", float64(limit), 1, MaxViolationLimit)
	}

	if err := validateDate("start_date", req.StartDate); err != nil {
		return nil, err
	}
	if err := validateDate("end_date", req.EndDate); err != nil {
		return nil, err
	}

	violations, err := uc.violationRepo.FindNearby(ctx, domain.ViolationQuery{
		Lat:          req.Lat,
		Lon:          req.Lon,
		RadiusMeters: radius,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Limit:        limit,
	})
	if err != nil {
		uc.logger.Error("Failed to find nearby violations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &dto.ViolationSearchResponse{
		Query: dto.CoordinateQuery{
			Latitude:     req.Lat,
			Longitude:    req.Lon,
			RadiusMeters: &radius,
		},
		Filters: dto.ViolationFilters{
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			Limit:     limit,
		},
		Results: dto.ViolationResults{
			Count:      len(violations),
			Violations: violations,
		},
	}, nil
}

func validateDate(field, value string) *errors.AppError {
	if value == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return errors.New(
			errors.CodeParseError,
			fmt.Sprintf("Invalid %s format. Use YYYY-MM-DD", field),
			http.StatusBadRequest,
		).WithDetails(map[string]interface{}{
			"field": field,
			"value": value,
		})
	}
	return nil
}

// LoadSample генерирует синтетические нарушения: случайный тип из каталога,
// случайное боро, случайные координаты внутри bounding box NYC, дата
// в пределах последнего года.
func (uc *ViolationUseCase) LoadSample(ctx context.Context, sampleSize int) (*dto.LoadSampleDataResponse, error) {
	violations := make([]domain.Violation, 0, sampleSize)

	for i := 0; i < sampleSize; i++ {
		vt := sampleViolationTypes[rand.Intn(len(sampleViolationTypes))]
		borough := domain.Boroughs[rand.Intn(len(domain.Boroughs))]

		daysBack := rand.Intn(365) + 1
		issueDate := time.Now().AddDate(0, 0, -daysBack).Format("2006-01-02")

		lat := geo.NYCLatMin + rand.Float64()*(geo.NYCLatMax-geo.NYCLatMin)
		lon := geo.NYCLonMin + rand.Float64()*(geo.NYCLonMax-geo.NYCLonMin)

		violations = append(violations, domain.Violation{
			SummonsNumber:        fmt.Sprintf("SAMPLE-%s", uuid.NewString()),
			IssueDate:            issueDate,
			ViolationDescription: vt.Description,
			Borough:              borough,
			FineAmount:           vt.Fine,
			Latitude:             &lat,
			Longitude:            &lon,
		})
	}

	inserted, err := uc.violationRepo.InsertBatch(ctx, violations)
	if err != nil {
		uc.logger.Error("Failed to insert sample violations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := uc.cacheRepo.InvalidateTrends(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate trends cache", zap.Error(err))
	}

	uc.logger.Info("Generated sample violation records", zap.Int("count", inserted))

	return &dto.LoadSampleDataResponse{
		Message:    fmt.Sprintf("Successfully loaded %d sample violation records", inserted),
		SampleSize: inserted,
	}, nil
}

// LoadReal загружает нарушения из NYC Open Data. Описание, штраф и боро
// восстанавливаются по коду нарушения и коду округа.
func (uc *ViolationUseCase) LoadReal(ctx context.Context, limit int) (*dto.LoadRealViolationsResponse, error) {
	violations, err := uc.openDataRepo.FetchViolations(ctx, limit)
	if err != nil {
		uc.logger.Error("Failed to fetch violations from NYC Open Data", zap.Error(err))
		return nil, errors.ErrUpstreamError
	}

	for i := range violations {
		violations[i].ViolationDescription = descriptionForCode(violations[i].ViolationCode)
		violations[i].FineAmount = fineForCode(violations[i].ViolationCode)
		violations[i].Borough = boroughForCounty(violations[i].ViolationCounty)
	}

	inserted, err := uc.violationRepo.InsertBatch(ctx, violations)
	if err != nil {
		uc.logger.Error("Failed to insert real violations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := uc.cacheRepo.InvalidateTrends(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate trends cache", zap.Error(err))
	}

	total, err := uc.violationRepo.Count(ctx)
	if err != nil {
		uc.logger.Warn("Failed to count violations", zap.Error(err))
		total = inserted
	}

	uc.logger.Info("Loaded real violation records",
		zap.Int("inserted", inserted),
		zap.Int("total_in_db", total))

	return &dto.LoadRealViolationsResponse{
		Message:             "Successfully loaded real violation data",
		RequestedLimit:      limit,
		TotalViolationsInDB: total,
		DataSource:          "NYC Open Data",
	}, nil
}
