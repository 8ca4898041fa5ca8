package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"oms/cmd"
	"oms/internal/adapters/out/postgres"
	"oms/internal/pkg/telemetry"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

const serviceName = "oms"

func main() {
	loadDotEnv()

	configs, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := telemetry.NewLogger(os.Stderr, configs.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, serviceName, configs.OTLPEndpoint)
	if err != nil {
		log.Fatalf("Error setting up tracing: %v", err)
	}

	gormDB := openDatabase(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger, telemetry.NewMetrics())
	if err != nil {
		log.Fatalf("Error wiring application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	router, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	startWebServer(ctx, router, configs)

	jobManager.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()
	if err = shutdownTracer(shutdownCtx); err != nil {
		logger.Error("Error shutting down tracer", "error", err)
	}
	if gormDB != nil {
		if err = postgres.Close(gormDB); err != nil {
			logger.Error("Error closing database", "error", err)
		}
	}
}

// loadDotEnv loads .env once. A missing file is fine: the environment may
// be provided by the container runtime.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func openDatabase(configs cmd.Config) *gorm.DB {
	if configs.StoreDriver == cmd.StoreDriverMemory {
		return nil
	}

	dsn, err := configs.DSN()
	if err != nil {
		log.Fatalf("Invalid database configuration: %v", err)
	}

	gormDB, err := postgres.Open(dsn, postgres.DefaultPoolConfig())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(ctx context.Context, e *echo.Echo, configs cmd.Config) {
	go func() {
		slog.Info("HTTP server listening", "addr", configs.Addr())
		if err := e.Start(configs.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}
}
