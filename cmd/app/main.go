package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"ordering/cmd"
	"ordering/internal/adapters/out/persistence"
	"ordering/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cmd.NewCompositionRoot(
		configs,
		mustUnitOfWorkFactory(configs),
		logger,
	)

	if configs.SeedMenus {
		if err := app.SeedMenus(ctx); err != nil {
			log.Fatalf("Error seeding menus: %v", err)
		}
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := app.CreateEcho(ctx)
	if err != nil {
		log.Fatalf("Error building http server: %v", err)
	}
	startWebServer(ctx, e, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:       envOr("HTTP_PORT", "8080"),
		Storage:        envOr("STORAGE", cmd.StorageMemory),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         envOr("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      envOr("DB_SSLMODE", "disable"),
		SessionIdleTTL: durationEnv("SESSION_IDLE_TTL", 30*time.Minute),
		SweepSchedule:  envOr("SESSION_SWEEP_SCHEDULE", "0 * * * * *"),
		RateLimit:      floatEnv("RATE_LIMIT_PER_SECOND", 10),
		RateBurst:      intEnv("RATE_LIMIT_BURST", 20),
		SeedMenus:      boolEnv("SEED_MENUS", true),
	}
	return config
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(envOr(key, fallback.String()))
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return v
}

func floatEnv(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(envOr(key, strconv.FormatFloat(fallback, 'f', -1, 64)), 64)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return v
}

func intEnv(key string, fallback int) int {
	v, err := strconv.Atoi(envOr(key, strconv.Itoa(fallback)))
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return v
}

func boolEnv(key string, fallback bool) bool {
	v, err := strconv.ParseBool(envOr(key, strconv.FormatBool(fallback)))
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return v
}

func mustUnitOfWorkFactory(configs cmd.Config) ports.UnitOfWorkFactory {
	switch configs.Storage {
	case cmd.StorageMemory:
		factory, err := persistence.NewInMemoryUnitOfWorkFactory("ordering")
		if err != nil {
			log.Fatalf("Error opening in-memory database: %v", err)
		}
		return factory
	case cmd.StoragePostgres:
		db, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
		if err != nil {
			log.Fatalf("Error connecting to database: %v", err)
		}
		if err = persistence.Migrate(db); err != nil {
			log.Fatalf("Error migrating database: %v", err)
		}
		return persistence.NewGormUnitOfWorkFactory(db)
	default:
		log.Fatalf("Unknown STORAGE %q, expected %q or %q", configs.Storage, cmd.StorageMemory, cmd.StoragePostgres)
		return nil
	}
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) {
	go func() {
		logger.Info("HTTP server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
