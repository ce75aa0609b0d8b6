package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nyc-parking-api/internal/pkg/utils"
	"github.com/nyc-parking-api/internal/usecase"
)

// LoaderHandler - обработчик перезагрузки датасетов
type LoaderHandler struct {
	loaderUC *usecase.LoaderUseCase
	logger   *zap.Logger
}

// NewLoaderHandler - создание нового LoaderHandler
func NewLoaderHandler(loaderUC *usecase.LoaderUseCase, logger *zap.Logger) *LoaderHandler {
	return &LoaderHandler{
		loaderUC: loaderUC,
		logger:   logger,
	}
}

// ReloadParkingSigns godoc
// @Summary Принудительная перезагрузка знаков парковки
// @Description Перезагружает таблицу знаков из NYC Open Data; при недоступности источника заполняет её синтетикой
// @Tags Data Loading
// @Produce json
// @Success 200 {object} dto.ReloadSignsResponse
// @Router /api/reload-parking-signs [post]
func (h *LoaderHandler) ReloadParkingSigns(c *fiber.Ctx) error {
	result := h.loaderUC.ReloadSigns(c.Context())
	return utils.SendJSON(c, result)
}
