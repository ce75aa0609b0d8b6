package dataset

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nyc-parking-api/internal/usecase"
	"github.com/nyc-parking-api/internal/worker"
)

// RefreshWorker периодически перезагружает знаки и паркоматы
// из NYC Open Data в in-memory таблицы
type RefreshWorker struct {
	*worker.BaseWorker
	loaderUC *usecase.LoaderUseCase
	interval time.Duration
}

// NewRefreshWorker создает новый RefreshWorker
func NewRefreshWorker(
	loaderUC *usecase.LoaderUseCase,
	interval time.Duration,
	logger *zap.Logger,
) *RefreshWorker {
	return &RefreshWorker{
		BaseWorker: worker.NewBaseWorker("dataset-refresh", logger),
		loaderUC:   loaderUC,
		interval:   interval,
	}
}

// Start запускает воркер
func (w *RefreshWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting RefreshWorker", zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case <-ticker.C:
			logger.Info("Refreshing datasets")
			w.loaderUC.LoadAll(ctx)
		}
	}
}
