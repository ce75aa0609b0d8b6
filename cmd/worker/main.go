package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/nyc-parking-api/internal/config"
	"github.com/nyc-parking-api/internal/infrastructure/opendata"
	"github.com/nyc-parking-api/internal/pkg/logger"
	"github.com/nyc-parking-api/internal/repository/cache"
	"github.com/nyc-parking-api/internal/repository/postgres"
	"github.com/nyc-parking-api/internal/usecase"
	"github.com/nyc-parking-api/internal/worker"
	"github.com/nyc-parking-api/internal/worker/dataset"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Violations Sync Worker")
	log.Info("Configuration loaded",
		zap.Duration("refresh_interval", cfg.Worker.RefreshInterval),
		zap.Int("violations_limit", cfg.Worker.ViolationsLimit))

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories
	violationRepo := postgres.NewViolationRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	openDataRepo := opendata.NewClient(&cfg.OpenData, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := violationRepo.InitSchema(ctx); err != nil {
		log.Fatal("Failed to initialize violations schema", zap.Error(err))
	}

	// 6. Initialize use cases
	violationUC := usecase.NewViolationUseCase(
		violationRepo,
		cacheRepo,
		openDataRepo,
		log,
		cfg.Cache.TrendsCacheTTL,
	)

	// 7. Initialize workers
	syncWorker := dataset.NewViolationsSyncWorker(
		violationUC,
		cfg.Worker.RefreshInterval,
		cfg.Worker.ViolationsLimit,
		log,
	)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(syncWorker)

	// Start workers
	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Cancel context to stop workers
	cancel()

	// Stop worker manager
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
