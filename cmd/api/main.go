package main

// @title NYC Parking API
// @version 1.0.0
// @description REST API для поиска парковки в Нью-Йорке на данных NYC Open Data.
// @description
// @description Основные возможности:
// @description - Поиск знаков парковки в радиусе точки
// @description - Поиск ближайшего паркомата с тарифом
// @description - Статистика нарушений парковки по боро и годам
// @description - Поиск нарушений с координатами в радиусе точки
// @description - Загрузка реальных и синтетических данных

// @contact.name API Support
// @contact.email support@nyc-parking-api.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/nyc-parking-api/docs/swagger"
	"github.com/nyc-parking-api/internal/config"
	httpDelivery "github.com/nyc-parking-api/internal/delivery/http"
	"github.com/nyc-parking-api/internal/delivery/http/handler"
	"github.com/nyc-parking-api/internal/domain"
	"github.com/nyc-parking-api/internal/infrastructure/opendata"
	"github.com/nyc-parking-api/internal/pkg/logger"
	"github.com/nyc-parking-api/internal/repository/cache"
	"github.com/nyc-parking-api/internal/repository/memtable"
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

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting NYC Parking API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

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
	log.Info("PostgreSQL connected")

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
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	signRepo := memtable.New[domain.ParkingSign]()
	meterRepo := memtable.New[domain.MeterZone]()
	violationRepo := postgres.NewViolationRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	openDataRepo := opendata.NewClient(&cfg.OpenData, log)

	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer initCancel()
	if err := violationRepo.InitSchema(initCtx); err != nil {
		log.Fatal("Failed to initialize violations schema", zap.Error(err))
	}

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	signUC := usecase.NewSignUseCase(signRepo, log, cfg.Data.DefaultSignRadius)
	meterUC := usecase.NewMeterUseCase(meterRepo, log, cfg.Data.MeterSearchRadius)
	violationUC := usecase.NewViolationUseCase(
		violationRepo,
		cacheRepo,
		openDataRepo,
		log,
		cfg.Cache.TrendsCacheTTL,
	)
	loaderUC := usecase.NewLoaderUseCase(signRepo, meterRepo, openDataRepo, log, cfg)
	statusUC := usecase.NewStatusUseCase(
		signRepo,
		meterRepo,
		violationRepo,
		cacheRepo,
		log,
		cfg.Cache.StatusCacheTTL,
	)

	log.Info("Use cases initialized")

	// 8. Initial data load
	loadCtx, loadCancel := context.WithTimeout(context.Background(), cfg.OpenData.RequestTimeout*2)
	loaderUC.LoadAll(loadCtx)
	loadCancel()

	// 9. Initialize HTTP Handlers
	signHandler := handler.NewSignHandler(signUC, log)
	meterHandler := handler.NewMeterHandler(meterUC, log)
	violationHandler := handler.NewViolationHandler(violationUC, log)
	statusHandler := handler.NewStatusHandler(statusUC, log)
	loaderHandler := handler.NewLoaderHandler(loaderUC, log)
	debugHandler := handler.NewDebugHandler(openDataRepo, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		signHandler,
		meterHandler,
		violationHandler,
		statusHandler,
		loaderHandler,
		debugHandler,
	)

	log.Info("HTTP server initialized")

	// 11. Start background workers if enabled
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var workerManager *worker.WorkerManager
	if cfg.Worker.Enabled {
		workerManager = worker.NewWorkerManager(log)
		workerManager.Register(dataset.NewRefreshWorker(loaderUC, cfg.Worker.RefreshInterval, log))
		workerManager.Register(dataset.NewViolationsSyncWorker(
			violationUC,
			cfg.Worker.RefreshInterval,
			cfg.Worker.ViolationsLimit,
			log,
		))

		if err := workerManager.Start(workerCtx); err != nil {
			log.Error("Failed to start workers", zap.Error(err))
		}
	}

	// 12. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 13. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// Stop workers
	if workerManager != nil {
		workerCancel()
		if err := workerManager.Stop(); err != nil {
			log.Error("Error stopping workers", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
