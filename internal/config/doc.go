// Package config manages application configuration for the Fernweh API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is parsed from environment variables via caarlos0/env struct tags:
//
//	cfg, err := config.Load()
//
// Callers that want .env support run godotenv.Load() before config.Load().
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, host, CORS, timeouts)
//   - MapsConfig: Google Maps gateway settings (API key, base URL, bias radius)
//   - SnapshotConfig: snapshot persistence settings (SQLite path, interval)
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	SERVER_HOST          - HTTP bind address (default: 0.0.0.0)
//	ENVIRONMENT          - development, staging, or production
//	LOG_LEVEL            - debug, info, warn, or error
//	CORS_ALLOWED_ORIGIN  - allowed CORS origin (default: *)
//	MAPS_API_KEY         - Google Maps API key (required outside development)
//	MAPS_BASE_URL        - Maps API base URL, overridable for fakes
//	MAPS_BIAS_RADIUS_M   - place search bias radius in meters
//	SNAPSHOT_DB_PATH     - SQLite snapshot database path
//	SNAPSHOT_INTERVAL    - background snapshot cadence
//	SNAPSHOT_KEEP        - number of snapshots retained
//
// # Validation
//
// Validate() aggregates every failure into a single error with errors.Join so
// a misconfigured deployment reports all problems at once:
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
