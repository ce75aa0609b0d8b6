package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nyc-parking-api/internal/pkg/utils"
	"github.com/nyc-parking-api/internal/usecase"
	"github.com/nyc-parking-api/internal/usecase/dto"
)

// MeterHandler - обработчик поиска ближайшего паркомата
type MeterHandler struct {
	meterUC *usecase.MeterUseCase
	logger  *zap.Logger
}

// NewMeterHandler - создание нового MeterHandler
func NewMeterHandler(meterUC *usecase.MeterUseCase, logger *zap.Logger) *MeterHandler {
	return &MeterHandler{
		meterUC: meterUC,
		logger:  logger,
	}
}

// GetMeterRate godoc
// @Summary Ближайший паркомат к точке
// @Description Возвращает ближайший паркомат с тарифом и расстоянием; result=null если рядом ничего нет
// @Tags Meters
// @Accept json
// @Produce json
// @Param lat query number true "Широта (в пределах NYC)"
// @Param lon query number true "Долгота (в пределах NYC)"
// @Success 200 {object} dto.MeterSearchResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/meter-rate [get]
func (h *MeterHandler) GetMeterRate(c *fiber.Ctx) error {
	lat, lon, appErr := requireCoordinates(c, "/api/meter-rate?lat=40.7589&lon=-73.9851")
	if appErr != nil {
		return utils.SendError(c, appErr)
	}

	result, err := h.meterUC.FindNearest(c.Context(), dto.MeterSearchRequest{
		Lat: lat,
		Lon: lon,
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, result)
}
