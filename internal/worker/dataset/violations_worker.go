package dataset

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nyc-parking-api/internal/usecase"
	"github.com/nyc-parking-api/internal/worker"
)

// ViolationsSyncWorker периодически догружает нарушения из NYC Open Data в БД
type ViolationsSyncWorker struct {
	*worker.BaseWorker
	violationUC *usecase.ViolationUseCase
	interval    time.Duration
	limit       int
}

// NewViolationsSyncWorker создает новый ViolationsSyncWorker
func NewViolationsSyncWorker(
	violationUC *usecase.ViolationUseCase,
	interval time.Duration,
	limit int,
	logger *zap.Logger,
) *ViolationsSyncWorker {
	return &ViolationsSyncWorker{
		BaseWorker:  worker.NewBaseWorker("violations-sync", logger),
		violationUC: violationUC,
		interval:    interval,
		limit:       limit,
	}
}

// Start запускает воркер
func (w *ViolationsSyncWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ViolationsSyncWorker",
		zap.Duration("interval", w.interval),
		zap.Int("limit", w.limit))

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
			result, err := w.violationUC.LoadReal(ctx, w.limit)
			if err != nil {
				logger.Error("Violations sync failed", zap.Error(err))
				continue
			}
			logger.Info("Violations synced",
				zap.Int("total_in_db", result.TotalViolationsInDB))
		}
	}
}
