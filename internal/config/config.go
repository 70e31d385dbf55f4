package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"arthsaathi/internal/core"
	"arthsaathi/internal/log"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type Config struct {
	// Storage
	DataBackend  string
	SQLiteDBPath string

	// Fixtures
	PersonasFile     string
	CatalogCacheSize int
	CatalogCacheTTL  time.Duration

	// Simulation
	MaxSessionEvents  int
	TimelineCap       int
	ReplayConcurrency int

	// Accounts
	MockVerificationCode string

	LogLevel string
}

func Load() *Config {
	return &Config{
		DataBackend:  getEnv("DATA_BACKEND", BackendSQLite),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/arth.db"),

		PersonasFile:     getEnv("PERSONAS_FILE", ""),
		CatalogCacheSize: getEnvInt("CATALOG_CACHE_SIZE", 8),
		CatalogCacheTTL:  getEnvDuration("CATALOG_CACHE_TTL", 10*time.Minute),

		MaxSessionEvents:  getEnvInt("MAX_SESSION_EVENTS", core.MaxSessionEvents),
		TimelineCap:       getEnvInt("TIMELINE_CAP", 100),
		ReplayConcurrency: getEnvInt("REPLAY_CONCURRENCY", 4),

		MockVerificationCode: getEnv("MOCK_VERIFICATION_CODE", "12345"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	switch c.DataBackend {
	case BackendMemory:
	case BackendSQLite:
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		}
	default:
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of [%s %s]", c.DataBackend, BackendMemory, BackendSQLite))
	}

	if c.PersonasFile != "" {
		switch strings.ToLower(filepath.Ext(c.PersonasFile)) {
		case ".json", ".yaml", ".yml":
			if _, err := os.Stat(c.PersonasFile); os.IsNotExist(err) {
				errors = append(errors, fmt.Sprintf("personas file does not exist: %s", c.PersonasFile))
			}
		default:
			errors = append(errors, fmt.Sprintf("invalid personas file '%s': must be .json, .yaml or .yml", c.PersonasFile))
		}
	}

	if c.CatalogCacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid catalog cache size %d: must be at least 1", c.CatalogCacheSize))
	}
	if c.CatalogCacheTTL < 0 {
		errors = append(errors, fmt.Sprintf("invalid catalog cache ttl %v: must not be negative", c.CatalogCacheTTL))
	}

	if c.MaxSessionEvents < 1 || c.MaxSessionEvents > core.MaxSessionEvents {
		errors = append(errors, fmt.Sprintf("invalid max session events %d: must be between 1 and %d", c.MaxSessionEvents, core.MaxSessionEvents))
	}
	if c.TimelineCap < 1 || c.TimelineCap > 1000 {
		errors = append(errors, fmt.Sprintf("invalid timeline cap %d: must be between 1 and 1000", c.TimelineCap))
	}
	if c.ReplayConcurrency < 1 || c.ReplayConcurrency > 64 {
		errors = append(errors, fmt.Sprintf("invalid replay concurrency %d: must be between 1 and 64", c.ReplayConcurrency))
	}

	if strings.TrimSpace(c.MockVerificationCode) == "" {
		errors = append(errors, "mock verification code cannot be empty")
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
