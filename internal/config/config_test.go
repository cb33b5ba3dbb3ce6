package config

import (
	"os"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/listkeeper")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("expected default env 'development', got %s", cfg.AppEnv)
	}
	if cfg.AppPort != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.AppPort)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected default log format 'json', got %s", cfg.LogFormat)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("expected default shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.RateLimitEnabled {
		t.Error("rate limiting should be disabled by default")
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	// t.Setenv registers the restore; the variable itself must be absent.
	t.Setenv("DATABASE_URL", "placeholder")
	os.Unsetenv("DATABASE_URL")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	if _, err := Load(); err == nil {
		t.Error("expected error for missing DATABASE_URL")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("READ_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.IsProduction() {
		t.Error("expected production mode")
	}
	if cfg.AppPort != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.AppPort)
	}
	if cfg.ReadTimeout != 2*time.Second {
		t.Errorf("expected read timeout 2s, got %v", cfg.ReadTimeout)
	}
}

func TestGetCORSAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: "https://example.com, http://localhost:3000 ,"}

	origins := cfg.GetCORSAllowedOrigins()
	if len(origins) != 2 {
		t.Fatalf("expected 2 origins, got %d: %v", len(origins), origins)
	}
	if origins[0] != "https://example.com" || origins[1] != "http://localhost:3000" {
		t.Errorf("unexpected origins: %v", origins)
	}
}

func TestGetCORSAllowedOrigins_Empty(t *testing.T) {
	cfg := &Config{}
	if origins := cfg.GetCORSAllowedOrigins(); origins != nil {
		t.Errorf("expected nil origins, got %v", origins)
	}
}
