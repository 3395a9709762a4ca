package common

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Archive ArchiveConfig
	Log     LogConfig
}

// ArchiveConfig holds extraction-run archive configuration. An empty DSN
// disables archiving; extraction itself never needs a database.
type ArchiveConfig struct {
	DSN         string
	DialTimeout time.Duration
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Archive: ArchiveConfig{
			DSN:         getEnv("CDS_ARCHIVE_DSN", ""),
			DialTimeout: getEnvAsDuration("CDS_ARCHIVE_DIAL_TIMEOUT", 3*time.Second),
		},
		Log: LogConfig{
			Level: getEnv("CDS_LOG_LEVEL", "info"),
		},
	}
}

// Validate validates the loaded configuration. An empty archive DSN is
// valid and means archiving is disabled.
func (c *Config) Validate() error {
	if c.Archive.DSN != "" && c.Archive.DialTimeout <= 0 {
		return NewAppError("CONFIG_ERROR", "CDS_ARCHIVE_DIAL_TIMEOUT must be positive", ErrInvalidInput)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return NewAppError("CONFIG_ERROR", "CDS_LOG_LEVEL must be one of debug, info, warn, error", ErrInvalidInput)
	}
	return nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
