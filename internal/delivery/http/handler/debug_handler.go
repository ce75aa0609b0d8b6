package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nyc-parking-api/internal/domain/repository"
	"github.com/nyc-parking-api/internal/pkg/utils"
)

// DebugHandler - обработчик диагностики доступности NYC Open Data
type DebugHandler struct {
	openDataRepo repository.OpenDataRepository
	logger       *zap.Logger
}

// NewDebugHandler - создание нового DebugHandler
func NewDebugHandler(openDataRepo repository.OpenDataRepository, logger *zap.Logger) *DebugHandler {
	return &DebugHandler{
		openDataRepo: openDataRepo,
		logger:       logger,
	}
}

// TestNYCAPI godoc
// @Summary Проверка доступности датасетов NYC Open Data
// @Description Делает тестовые запросы с $limit=10 к датасетам и возвращает статус-коды и размеры ответов
// @Tags Debug
// @Produce json
// @Success 200 {object} map[string]repository.DatasetProbe
// @Router /api/debug/test-nyc-api [get]
func (h *DebugHandler) TestNYCAPI(c *fiber.Ctx) error {
	probes := h.openDataRepo.Probe(c.Context())
	return utils.SendJSON(c, probes)
}
