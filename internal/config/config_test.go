package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "FRONTEND_ORIGIN", "STUDYPET_DB", "STUDYPET_AUTH_SECRET", "WOLFRAM_APP_ID", "STUDYPET_LOG_MODE", "STATS_PROVIDER"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	if cfg.Port != 4000 {
		t.Errorf("port = %d, want 4000", cfg.Port)
	}
	if cfg.FrontendOrigin != "http://localhost:3000" {
		t.Errorf("origin = %q", cfg.FrontendOrigin)
	}
	if cfg.LogMode != "prod" {
		t.Errorf("log mode = %q", cfg.LogMode)
	}
	if cfg.StatsProvider != "store" {
		t.Errorf("stats provider = %q, want store", cfg.StatsProvider)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("FRONTEND_ORIGIN", "https://studypet.example")
	t.Setenv("STUDYPET_AUTH_SECRET", "s3cret")
	t.Setenv("STATS_PROVIDER", "mock")

	cfg := FromEnv()
	if cfg.Port != 8080 {
		t.Errorf("port = %d", cfg.Port)
	}
	if cfg.FrontendOrigin != "https://studypet.example" {
		t.Errorf("origin = %q", cfg.FrontendOrigin)
	}
	if cfg.AuthSecret != "s3cret" {
		t.Errorf("secret = %q", cfg.AuthSecret)
	}
	if cfg.StatsProvider != "mock" {
		t.Errorf("stats provider = %q", cfg.StatsProvider)
	}
}

func TestFromEnvBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	if cfg := FromEnv(); cfg.Port != 4000 {
		t.Errorf("port = %d, want fallback 4000", cfg.Port)
	}
}
