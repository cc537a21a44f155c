// Package config loads server settings from the environment.
package config

import (
	"os"
	"strconv"
)

// DefaultFrontendOrigin is the CORS origin used when none is
// configured.
const DefaultFrontendOrigin = "http://localhost:3000"

// Config holds everything the server needs besides the LLM settings,
// which live with the provider layer.
type Config struct {
	// Port the HTTP server listens on.
	Port int

	// FrontendOrigin is the allowed CORS origin.
	FrontendOrigin string

	// DBPath is the SQLite database file.
	DBPath string

	// AuthSecret signs and verifies session tokens. When empty the
	// server runs in open mode and trusts the X-User-ID header, which
	// is only acceptable for local development.
	AuthSecret string

	// WolframAppID authenticates against the Wolfram Alpha API.
	// Optional; the wolfram endpoints return an error without it.
	WolframAppID string

	// LogMode is "dev" or "prod".
	LogMode string

	// StatsProvider selects where /api/stats reads from: "store"
	// aggregates recorded activity, "mock" serves deterministic
	// demo numbers.
	StatsProvider string
}

// FromEnv reads the configuration, filling defaults for anything
// unset.
func FromEnv() Config {
	return Config{
		Port:           getInt("PORT", 4000),
		FrontendOrigin: getStr("FRONTEND_ORIGIN", DefaultFrontendOrigin),
		DBPath:         os.Getenv("STUDYPET_DB"),
		AuthSecret:     os.Getenv("STUDYPET_AUTH_SECRET"),
		WolframAppID:   os.Getenv("WOLFRAM_APP_ID"),
		LogMode:        getStr("STUDYPET_LOG_MODE", "prod"),
		StatsProvider:  getStr("STATS_PROVIDER", "store"),
	}
}

func getStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
