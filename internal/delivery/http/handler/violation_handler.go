package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nyc-parking-api/internal/pkg/utils"
	"github.com/nyc-parking-api/internal/pkg/validator"
	"github.com/nyc-parking-api/internal/usecase"
	"github.com/nyc-parking-api/internal/usecase/dto"
)

// ViolationHandler - обработчик статистики и поиска нарушений
type ViolationHandler struct {
	violationUC *usecase.ViolationUseCase
	logger      *zap.Logger
}

// NewViolationHandler - создание нового ViolationHandler
func NewViolationHandler(violationUC *usecase.ViolationUseCase, logger *zap.Logger) *ViolationHandler {
	return &ViolationHandler{
		violationUC: violationUC,
		logger:      logger,
	}
}

// GetViolationTrends godoc
// @Summary Топ-10 типов нарушений парковки
// @Description Возвращает агрегацию нарушений по типам с количеством и средним штрафом, опционально по боро и году
// @Tags Violations
// @Accept json
// @Produce json
// @Param borough query string false "Боро (MANHATTAN, BROOKLYN, QUEENS, BRONX, STATEN ISLAND)"
// @Param year query int false "Год выписки нарушения (2010-2025)"
// @Success 200 {object} domain.ViolationTrends
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/violation-trends [get]
func (h *ViolationHandler) GetViolationTrends(c *fiber.Ctx) error {
	year, appErr := optionalIntQuery(c, "year")
	if appErr != nil {
		return utils.SendError(c, appErr)
	}

	result, err := h.violationUC.GetTrends(c.Context(), dto.TrendsRequest{
		Borough: c.Query("borough"),
		Year:    intOrZero(year),
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, result)
}

// GetViolations godoc
// @Summary Поиск нарушений в радиусе точки
// @Description Возвращает нарушения с координатами в заданном радиусе, отсортированные по расстоянию, с опциональным фильтром по датам
// @Tags Violations
// @Accept json
// @Produce json
// @Param lat query number true "Широта (в пределах NYC)"
// @Param lon query number true "Долгота (в пределах NYC)"
// @Param radius query number false "Радиус поиска в метрах (10-5000)" default(1000)
// @Param start_date query string false "Начальная дата (YYYY-MM-DD)"
// @Param end_date query string false "Конечная дата (YYYY-MM-DD)"
// @Param limit query int false "Максимальное количество результатов (1-1000)" default(100)
// @Success 200 {object} dto.ViolationSearchResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/violations [get]
func (h *ViolationHandler) GetViolations(c *fiber.Ctx) error {
	lat, lon, appErr := requireCoordinates(c, "/api/violations?lat=40.7589&lon=-73.9851&radius=1000")
	if appErr != nil {
		return utils.SendError(c, appErr)
	}

	radius, appErr := optionalFloatQuery(c, "radius")
	if appErr != nil {
		return utils.SendError(c, appErr)
	}

	limit, appErr := optionalIntQuery(c, "limit")
	if appErr != nil {
		return utils.SendError(c, appErr)
	}

	result, err := h.violationUC.FindNearby(c.Context(), dto.ViolationSearchRequest{
		Lat:       lat,
		Lon:       lon,
		Radius:    radius,
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Limit:     limit,
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, result)
}

// LoadSampleData godoc
// @Summary Генерация синтетических нарушений
// @Description Генерирует и сохраняет синтетические записи о нарушениях для демонстрации без NYC Open Data
// @Tags Data Loading
// @Accept json
// @Produce json
// @Param request body dto.LoadSampleDataRequest false "Размер выборки (100-10000, по умолчанию 1000)"
// @Success 200 {object} dto.LoadSampleDataResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/load-sample-data [post]
func (h *ViolationHandler) LoadSampleData(c *fiber.Ctx) error {
	var req dto.LoadSampleDataRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
	}

	// Явный sample_size валидируется как есть, значение по умолчанию
	// подставляется только для отсутствующего поля
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	sampleSize := 1000
	if req.SampleSize != nil {
		sampleSize = *req.SampleSize
	}

	result, err := h.violationUC.LoadSample(c.Context(), sampleSize)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, result)
}

// LoadRealViolations godoc
// @Summary Загрузка реальных нарушений из NYC Open Data
// @Description Загружает записи о нарушениях из открытого датасета NYC и сохраняет их в БД
// @Tags Data Loading
// @Accept json
// @Produce json
// @Param request body dto.LoadRealViolationsRequest false "Лимит записей (100-50000, по умолчанию 10000)"
// @Success 200 {object} dto.LoadRealViolationsResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/load-real-violations [post]
func (h *ViolationHandler) LoadRealViolations(c *fiber.Ctx) error {
	var req dto.LoadRealViolationsRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	limit := 10000
	if req.Limit != nil {
		limit = *req.Limit
	}

	result, err := h.violationUC.LoadReal(c.Context(), limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, result)
}
