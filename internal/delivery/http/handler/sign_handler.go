package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nyc-parking-api/internal/pkg/utils"
	"github.com/nyc-parking-api/internal/usecase"
	"github.com/nyc-parking-api/internal/usecase/dto"
)

// SignHandler - обработчик поиска знаков парковки
type SignHandler struct {
	signUC *usecase.SignUseCase
	logger *zap.Logger
}

// NewSignHandler - создание нового SignHandler
func NewSignHandler(signUC *usecase.SignUseCase, logger *zap.Logger) *SignHandler {
	return &SignHandler{
		signUC: signUC,
		logger: logger,
	}
}

// GetParkingSigns godoc
// @Summary Поиск знаков парковки в радиусе точки
// @Description Возвращает знаки парковки в заданном радиусе от координат, отсортированные по расстоянию
// @Tags Parking Signs
// @Accept json
// @Produce json
// @Param lat query number true "Широта (в пределах NYC)"
// @Param lon query number true "Долгота (в пределах NYC)"
// @Param radius query number false "Радиус поиска в метрах (10-1000)" default(100)
// @Success 200 {object} dto.SignSearchResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/parking-signs [get]
func (h *SignHandler) GetParkingSigns(c *fiber.Ctx) error {
	lat, lon, appErr := requireCoordinates(c, "/api/parking-signs?lat=40.7589&lon=-73.9851&radius=200")
	if appErr != nil {
		return utils.SendError(c, appErr)
	}

	radius, appErr := optionalFloatQuery(c, "radius")
	if appErr != nil {
		return utils.SendError(c, appErr)
	}

	result, err := h.signUC.FindNearby(c.Context(), dto.SignSearchRequest{
		Lat:    lat,
		Lon:    lon,
		Radius: radius,
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, result)
}
