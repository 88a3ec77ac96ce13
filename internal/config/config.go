package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Database DatabaseConfig
	APIPort  string
	LogLevel string

	// CSVPath is where the bootstrap importer looks for seed data.
	CSVPath string

	// RequestTimeout bounds every request, including its store queries.
	RequestTimeout time.Duration

	// Rate limiting: RateLimitRequests per RateLimitWindow, per client IP.
	RateLimitRequests int
	RateLimitWindow   time.Duration

	CORSOrigin string

	// StrictFilters rejects requests with malformed filter parameters
	// instead of logging a warning and continuing.
	StrictFilters bool
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int
	MinConns int
}

func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			Name:     getEnv("DB_NAME", "ev_catalog"),
			User:     getEnv("DB_USER", "ev_catalog"),
			Password: getEnv("DB_PASSWORD", ""),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		APIPort:           getEnv("API_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CSVPath:           getEnv("CSV_PATH", "data/ElectricCarData.csv"),
		RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT_SECONDS", 30*time.Second),
		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   getEnvDuration("RATE_LIMIT_WINDOW_SECONDS", 15*time.Minute),
		CORSOrigin:        getEnv("CORS_ORIGIN", "*"),
		StrictFilters:     getEnvBool("STRICT_FILTERS", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
