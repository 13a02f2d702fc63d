// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"os"
)

// Config holds all runtime configuration values.  Each field corresponds to
// one or more environment variables.  DATABASE_URL is the only required
// setting; everything else falls back to a sensible default.
type Config struct {
	Port        string     // HTTP port to listen on
	DatabaseURL string     // MySQL DSN, e.g. user:pass@tcp(host:3306)/dbname
	AMQPURL     string     // RabbitMQ URL; empty disables event publishing
	Log         LogConfig  // log level and output format
	CORS        CORSConfig // cross-origin policy
}

// Load reads configuration values from the environment.  It returns an
// error when a required variable is missing so the caller can refuse to
// start before binding a listening port.
func Load() (Config, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return Config{}, errors.New("missing required env var: DATABASE_URL")
	}
	return Config{
		Port:        getenv("APP_PORT", "8080"),
		DatabaseURL: dsn,
		AMQPURL:     firstEnv("RABBITMQ_URL", "AMQP_URL"),
		Log:         loadLog(),
		CORS:        loadCORS(),
	}, nil
}

// getenv returns the value of key, or def when the variable is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// firstEnv returns the first non-empty value among keys.
func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
