// Package cli provides common initialization for the risparmi command:
// env file, logger, configuration and tracker wiring.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"

	"risparmi/internal/config"
	applog "risparmi/internal/log"
	"risparmi/internal/services"
	"risparmi/internal/storage"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging at the given level and
// sets it as the default logger.
func SetupLogger(level slog.Level) *applog.Logger {
	logger := applog.New(applog.Config{Level: level, Component: applog.ComponentApp})
	applog.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitSlotStore constructs the configured persistence backend.
func InitSlotStore(cfg *config.Config, logger *applog.Logger) (storage.SlotStore, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		logger.Debug("Initialized memory backend", applog.FieldBackend, cfg.StorageBackend)
		return storage.NewMemoryStore(), nil
	default:
		store, err := storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		logger.Debug("Initialized sqlite backend",
			applog.FieldBackend, cfg.StorageBackend, "path", cfg.SQLiteDBPath)
		return store, nil
	}
}

// InitTracker runs the whole startup sequence: env file, config,
// logger, storage backend, tracker service.
func InitTracker(ctx context.Context) (*services.TrackerService, *applog.Logger, error) {
	LoadEnvFile()

	cfg, err := LoadAndValidateConfig()
	if err != nil {
		return nil, nil, err
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	logger := SetupLogger(level)

	store, err := InitSlotStore(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return services.NewTrackerService(ctx, store, logger), logger, nil
}
