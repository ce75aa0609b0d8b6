package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/nyc-parking-api/internal/config"
	"github.com/nyc-parking-api/internal/delivery/http/handler"
	"github.com/nyc-parking-api/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	signHandler      *handler.SignHandler
	meterHandler     *handler.MeterHandler
	violationHandler *handler.ViolationHandler
	statusHandler    *handler.StatusHandler
	loaderHandler    *handler.LoaderHandler
	debugHandler     *handler.DebugHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	signHandler *handler.SignHandler,
	meterHandler *handler.MeterHandler,
	violationHandler *handler.ViolationHandler,
	statusHandler *handler.StatusHandler,
	loaderHandler *handler.LoaderHandler,
	debugHandler *handler.DebugHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "NYC Parking API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		signHandler:      signHandler,
		meterHandler:     meterHandler,
		violationHandler: violationHandler,
		statusHandler:    statusHandler,
		loaderHandler:    loaderHandler,
		debugHandler:     debugHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api")

	// Health / status
	api.Get("/health", s.statusHandler.Health)
	api.Get("/data-status", s.statusHandler.GetDataStatus)

	// Search routes
	api.Get("/parking-signs", s.signHandler.GetParkingSigns)
	api.Get("/meter-rate", s.meterHandler.GetMeterRate)

	// Violations
	api.Get("/violation-trends", s.violationHandler.GetViolationTrends)
	api.Get("/violations", s.violationHandler.GetViolations)

	// Data loading
	api.Post("/load-sample-data", s.violationHandler.LoadSampleData)
	api.Post("/load-real-violations", s.violationHandler.LoadRealViolations)
	api.Post("/reload-parking-signs", s.loaderHandler.ReloadParkingSigns)

	// Debug routes
	debug := api.Group("/debug")
	debug.Get("/test-nyc-api", s.debugHandler.TestNYCAPI)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App возвращает fiber.App для тестов
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
