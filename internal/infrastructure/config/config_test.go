package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q, want 8080", cfg.HTTPPort)
	}
	if cfg.DatabaseMaxConns != 25 {
		t.Errorf("DatabaseMaxConns = %d, want 25", cfg.DatabaseMaxConns)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if !cfg.RepairOnStart {
		t.Error("RepairOnStart should default to true")
	}
	if cfg.MigrateOnStart {
		t.Error("MigrateOnStart should default to false")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("STATS_CACHE_TTL", "5m")
	t.Setenv("REPAIR_ON_START", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPPort != "9999" {
		t.Errorf("HTTPPort = %q, want 9999", cfg.HTTPPort)
	}
	if cfg.StatsCacheTTL.Minutes() != 5 {
		t.Errorf("StatsCacheTTL = %v, want 5m", cfg.StatsCacheTTL)
	}
	if cfg.RepairOnStart {
		t.Error("RepairOnStart should be overridable")
	}
}
