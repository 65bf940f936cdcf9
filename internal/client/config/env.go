package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first, if present;
// real environment variables win over .env entries (godotenv semantics).
//
// Supported variables:
//
//	EXLPRO_API_BASE          backend base URL
//	EXLPRO_DB_PATH           sqlite file for persisted client state
//	EXLPRO_DOWNLOAD_DIR      directory for downloaded results
//	EXLPRO_NOTIFICATION_TTL  duration, e.g. "5s"
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.APIBaseURL = getEnv("EXLPRO_API_BASE", cfg.APIBaseURL)
	cfg.LocalDBPath = getEnv("EXLPRO_DB_PATH", cfg.LocalDBPath)
	cfg.DownloadDir = getEnv("EXLPRO_DOWNLOAD_DIR", cfg.DownloadDir)

	if v := getEnv("EXLPRO_NOTIFICATION_TTL", ""); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.NotificationTTL = d
		}
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
