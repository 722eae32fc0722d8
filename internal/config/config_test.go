package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "DATABASE_URL", "API_BASE_URL", "HTTP_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("port = %q", cfg.Port)
	}
	if cfg.DatabaseURL != "" {
		t.Fatalf("database url = %q", cfg.DatabaseURL)
	}
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Fatalf("api base url = %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("timeout = %v", cfg.HTTPTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://localhost/shopfront")
	t.Setenv("API_BASE_URL", "http://api:9000")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "3")

	cfg := Load()
	if cfg.Port != "9000" || cfg.DatabaseURL == "" || cfg.APIBaseURL != "http://api:9000" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Fatalf("timeout = %v", cfg.HTTPTimeout)
	}
}

func TestLoadIgnoresBadTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_SECONDS", "soon")
	if got := Load().HTTPTimeout; got != 10*time.Second {
		t.Fatalf("timeout = %v", got)
	}
}
