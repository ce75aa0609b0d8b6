package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nyc-parking-api/internal/pkg/utils"
	"github.com/nyc-parking-api/internal/usecase"
)

// StatusHandler - обработчик health check и состояния данных
type StatusHandler struct {
	statusUC *usecase.StatusUseCase
	logger   *zap.Logger
}

// NewStatusHandler - создание нового StatusHandler
func NewStatusHandler(statusUC *usecase.StatusUseCase, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		statusUC: statusUC,
		logger:   logger,
	}
}

// Health godoc
// @Summary Health check
// @Description Проверка живости сервиса
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Статус сервиса"
// @Router /api/health [get]
func (h *StatusHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "NYC Parking API",
		"time":    time.Now().UTC(),
	})
}

// GetDataStatus godoc
// @Summary Состояние загруженных данных
// @Description Возвращает счётчики и время обновления по знакам, паркоматам и нарушениям
// @Tags Health
// @Produce json
// @Success 200 {object} domain.DataStatus
// @Router /api/data-status [get]
func (h *StatusHandler) GetDataStatus(c *fiber.Ctx) error {
	status := h.statusUC.GetDataStatus(c.Context())
	return utils.SendJSON(c, status)
}
