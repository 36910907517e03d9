package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first when present; a missing file
// is not an error. Recognized variables:
//
//	WIP_API_URL          base URL of the backend API
//	WIP_REQUEST_TIMEOUT  per-request timeout, Go duration syntax (e.g. "10s")
//	WIP_SESSION_DB       path of the local session database
//
// Malformed duration values are ignored so a bad environment cannot keep the
// client from starting.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("WIP_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("WIP_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("WIP_SESSION_DB"); v != "" {
		cfg.SessionDBPath = v
	}
}
