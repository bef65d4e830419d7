package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.OTelServiceName != "localflavor-api" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.BatchMaxItems != 100 || cfg.BatchConcurrency != 8 || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected batch defaults %+v", cfg)
	}
	if cfg.JWTSecret != "" {
		t.Fatalf("expected auth to be off by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("BATCH_MAX_ITEMS", "500")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.JWTSecret != "secret" || cfg.BatchMaxItems != 500 || cfg.ShutdownTimeout != 2*time.Second {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadRejectsOutOfRangeValues(t *testing.T) {
	tests := map[string]string{
		"BATCH_MAX_ITEMS":   "0",
		"BATCH_CONCURRENCY": "65",
		"LOG_LEVEL":         "verbose",
		"PORT":              "http",
		"SHUTDOWN_TIMEOUT":  "0s",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected %s=%s to be rejected", key, value)
			}
		})
	}
}
