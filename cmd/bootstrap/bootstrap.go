package bootstrap

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/config"
	deliveryHttp "github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/delivery/http"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/delivery/http/handler"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/delivery/http/middleware"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/entity"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/infrastructure/cache"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/repository"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/service"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/usecase"
	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const envFile = ".env"

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	BaseTable   *entity.Table
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized.
// The dataset is loaded here; any load, parse or domain error aborts startup.
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	app.Log = setupLogger(cfg.Log)
	app.Log.Info("Configuration loaded successfully")

	ctx := context.Background()

	// Build the base table
	repo := repository.NewAppointmentCSVRepository(cfg.Dataset.Path, app.Log)
	base, err := service.BuildBaseTable(ctx, repo, app.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to build base table: %w", err)
	}
	app.BaseTable = base

	// Initialize Redis (optional)
	dashboardCache := service.NewNoopDashboardCache()
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis, app.Log)
		if err != nil {
			app.Log.Warnf("Dashboard cache disabled: %+v", err)
		} else {
			app.RedisClient = redisClient
			dashboardCache = service.NewRedisDashboardCache(redisClient, app.Log, cfg.Cache.TTL)
		}
	} else {
		app.Log.Info("REDIS_HOST not set, dashboard cache disabled")
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, app.Log, base, dashboardCache)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		log.SetLevel(logrus.InfoLevel)
		log.Warnf("Invalid LOG_LEVEL %q, using info", cfg.Level)
		return log
	}
	log.SetLevel(level)
	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, base *entity.Table, dashboardCache service.DashboardCache) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize usecases
	dashboardUsecase := usecase.NewDashboardUsecase(log, base, dashboardCache)

	// Initialize handlers
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(dashboardHandler, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	return &http.Server{
		Addr:              net.JoinHostPort(cfg.App.Host, cfg.App.Port),
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on %s", app.Server.Addr)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes the Redis connection if one was opened
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
