package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Maps     MapsConfig
	Snapshot SnapshotConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port          string        `env:"SERVER_PORT" envDefault:"8080"`
	Host          string        `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Env           string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigin string        `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`
	ReadTimeout   time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout  time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
}

// MapsConfig holds Google Maps gateway settings
type MapsConfig struct {
	APIKey           string        `env:"MAPS_API_KEY"`
	BaseURL          string        `env:"MAPS_BASE_URL" envDefault:"https://maps.googleapis.com"`
	Timeout          time.Duration `env:"MAPS_TIMEOUT" envDefault:"10s"`
	BiasRadiusMeters int           `env:"MAPS_BIAS_RADIUS_M" envDefault:"100000"`
}

// SnapshotConfig holds snapshot persistence settings
type SnapshotConfig struct {
	DBPath   string        `env:"SNAPSHOT_DB_PATH" envDefault:"fernweh.db"`
	Interval time.Duration `env:"SNAPSHOT_INTERVAL" envDefault:"5m"`
	Keep     int           `env:"SNAPSHOT_KEEP" envDefault:"5"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Addr returns the host:port the HTTP server binds to
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// SlogLevel maps the configured log level to a slog.Level
func (c *Config) SlogLevel() slog.Level {
	switch c.Server.LogLevel {
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

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "staging" && c.Server.Env != "production" {
		errs = append(errs, fmt.Errorf("ENVIRONMENT must be 'development', 'staging', or 'production', got '%s'", c.Server.Env))
	}
	if c.Server.LogLevel != "debug" && c.Server.LogLevel != "info" && c.Server.LogLevel != "warn" && c.Server.LogLevel != "error" {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be 'debug', 'info', 'warn', or 'error', got '%s'", c.Server.LogLevel))
	}
	if c.Server.AllowedOrigin == "" {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGIN is required"))
	}

	// Maps validation - the API key is only optional in development, where a
	// local fake provider is the usual target
	if !c.IsDevelopment() && c.Maps.APIKey == "" {
		errs = append(errs, errors.New("MAPS_API_KEY is required outside development"))
	}
	if c.Maps.BaseURL == "" {
		errs = append(errs, errors.New("MAPS_BASE_URL is required"))
	}
	if c.Maps.Timeout <= 0 {
		errs = append(errs, errors.New("MAPS_TIMEOUT must be positive"))
	}
	if c.Maps.BiasRadiusMeters <= 0 {
		errs = append(errs, errors.New("MAPS_BIAS_RADIUS_M must be positive"))
	}

	// Snapshot validation
	if c.Snapshot.DBPath == "" {
		errs = append(errs, errors.New("SNAPSHOT_DB_PATH is required"))
	}
	if c.Snapshot.Interval <= 0 {
		errs = append(errs, errors.New("SNAPSHOT_INTERVAL must be positive"))
	}
	if c.Snapshot.Keep < 1 {
		errs = append(errs, errors.New("SNAPSHOT_KEEP must be at least 1"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
