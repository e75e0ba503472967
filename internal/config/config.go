package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type Config struct {
	// Database
	SQLiteDBPath string

	// Backend selection
	StorageBackend string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		SQLiteDBPath:   getEnv("RISPARMI_DB_PATH", defaultDBPath()),
		StorageBackend: getEnv("RISPARMI_BACKEND", BackendSQLite),
		LogLevel:       getEnv("RISPARMI_LOG_LEVEL", "warn"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	switch c.StorageBackend {
	case BackendSQLite, BackendMemory:
	default:
		errs = append(errs, fmt.Sprintf("invalid backend '%s': must be one of sqlite, memory", c.StorageBackend))
	}

	if c.StorageBackend == BackendSQLite && strings.TrimSpace(c.SQLiteDBPath) == "" {
		errs = append(errs, "sqlite backend requires a database path")
	}

	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel)
	}
}

// defaultDBPath keeps the profile under the user's home directory,
// falling back to a relative data dir when home cannot be resolved.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("data", "risparmi.db")
	}
	return filepath.Join(home, ".risparmi", "risparmi.db")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
