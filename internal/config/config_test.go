package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LEAGUE_ID", "12345")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LeagueID != 12345 {
		t.Fatalf("LeagueID = %d, want 12345", cfg.LeagueID)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("AppEnv = %q, want dev", cfg.AppEnv)
	}
	if cfg.UpstreamMode != UpstreamModeLive {
		t.Fatalf("UpstreamMode = %q, want live", cfg.UpstreamMode)
	}
	if cfg.RefreshInterval != 30*time.Second {
		t.Fatalf("RefreshInterval = %s, want 30s", cfg.RefreshInterval)
	}
	if cfg.StaticRefreshInterval != 30*time.Minute {
		t.Fatalf("StaticRefreshInterval = %s, want 30m", cfg.StaticRefreshInterval)
	}
	if cfg.TeamFetchWorkers != 4 {
		t.Fatalf("TeamFetchWorkers = %d, want 4", cfg.TeamFetchWorkers)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
}

func TestLoadRequiresLeagueID(t *testing.T) {
	if _, err := Load(); err == nil {
		t.Fatal("Load without LEAGUE_ID succeeded")
	}

	t.Setenv("LEAGUE_ID", "0")
	if _, err := Load(); err == nil {
		t.Fatal("Load with LEAGUE_ID=0 succeeded")
	}
}

func TestLoadRejectsInvalidUpstreamMode(t *testing.T) {
	t.Setenv("LEAGUE_ID", "1")
	t.Setenv("UPSTREAM_MODE", "replay")

	if _, err := Load(); err == nil {
		t.Fatal("Load with invalid UPSTREAM_MODE succeeded")
	}
}

func TestLoadFixturesModeRequiresDir(t *testing.T) {
	t.Setenv("LEAGUE_ID", "1")
	t.Setenv("UPSTREAM_MODE", "fixtures")

	if _, err := Load(); err == nil {
		t.Fatal("Load in fixtures mode without a directory succeeded")
	}

	t.Setenv("UPSTREAM_FIXTURES_DIR", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UpstreamMode != UpstreamModeFixtures {
		t.Fatalf("UpstreamMode = %q, want fixtures", cfg.UpstreamMode)
	}
}

func TestLoadUptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("LEAGUE_ID", "1")
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev/1"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("UptraceDSN = %q", cfg.UptraceDSN)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("LEAGUE_ID", "1")
	t.Setenv("REFRESH_INTERVAL", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("Load with invalid REFRESH_INTERVAL succeeded")
	}
}
