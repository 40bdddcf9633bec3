// Package config centralises runtime configuration for the planner service.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration values for the planner service.
type Config struct {
	Port        string
	Environment string
}

// Load reads a local .env file when present, then environment variables,
// applying defaults for local development.
func Load() Config {
	// Best effort; absence of a .env file is the normal case outside dev.
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
