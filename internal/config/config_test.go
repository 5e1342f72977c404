package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "4000" {
		t.Fatalf("expected default port 4000, got %s", cfg.Port)
	}
	if cfg.MonitorInterval != time.Minute {
		t.Fatalf("expected default monitor interval, got %v", cfg.MonitorInterval)
	}
	if cfg.Favorites.Backend != "memory" {
		t.Fatalf("expected memory favorites backend, got %s", cfg.Favorites.Backend)
	}
	if cfg.StrictKickoff {
		t.Fatal("expected strict kickoff disabled by default")
	}
	if len(cfg.CORS.Origins) != 1 || cfg.CORS.Origins[0] != "*" {
		t.Fatalf("expected permissive CORS default, got %v", cfg.CORS.Origins)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STRICT_KICKOFF", "1")
	t.Setenv("MONITOR_INTERVAL", "30s")
	t.Setenv("FAVORITES_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("METRICS_ENABLED", "true")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected port override, got %s", cfg.Port)
	}
	if !cfg.StrictKickoff {
		t.Fatal("expected strict kickoff enabled")
	}
	if cfg.MonitorInterval != 30*time.Second {
		t.Fatalf("expected 30s interval, got %v", cfg.MonitorInterval)
	}
	if cfg.Favorites.Backend != FavoritesBackendRedis || cfg.Favorites.RedisAddr != "redis:6379" {
		t.Fatalf("unexpected favorites config %+v", cfg.Favorites)
	}
	if len(cfg.CORS.Origins) != 2 || cfg.CORS.Origins[1] != "https://b.example" {
		t.Fatalf("unexpected CORS origins %v", cfg.CORS.Origins)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled")
	}
}

func TestEnvHelpersRejectBadValues(t *testing.T) {
	t.Setenv("MONITOR_INTERVAL", "soon")
	t.Setenv("STRICT_KICKOFF", "maybe")
	t.Setenv("CORS_ORIGINS", " , ,")

	cfg := Load()
	if cfg.MonitorInterval != time.Minute {
		t.Fatalf("expected default interval for bad value, got %v", cfg.MonitorInterval)
	}
	if cfg.StrictKickoff {
		t.Fatal("expected default for unparsable bool")
	}
	if len(cfg.CORS.Origins) != 1 || cfg.CORS.Origins[0] != "*" {
		t.Fatalf("expected default origins for blank list, got %v", cfg.CORS.Origins)
	}
}

func TestDurationEnvRejectsNegative(t *testing.T) {
	t.Setenv("MONITOR_INTERVAL", "-5s")
	if cfg := Load(); cfg.MonitorInterval != time.Minute {
		t.Fatalf("expected default for negative duration, got %v", cfg.MonitorInterval)
	}
}
