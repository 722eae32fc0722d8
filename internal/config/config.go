// Package config provides runtime configuration for the shopfront binaries.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the knobs for both the API server and the terminal client.
type Config struct {
	// Port is the API listen port.
	Port string
	// DatabaseURL selects the postgres backend when set.
	DatabaseURL string
	// APIBaseURL is where the client finds the storefront API.
	APIBaseURL string
	// HTTPTimeout bounds each client-side HTTP call.
	HTTPTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Load collects configuration from the environment with defaults.
func Load() Config {
	return Config{
		Port:        getenv("APP_PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIBaseURL:  getenv("API_BASE_URL", "http://localhost:8080"),
		HTTPTimeout: time.Duration(atoienv("HTTP_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}
