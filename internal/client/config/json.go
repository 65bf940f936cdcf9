package config

import (
	"encoding/json"
	"os"

	"github.com/exlpro/invoice-cli/internal/flagx"
	"github.com/exlpro/invoice-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "5s"
// or as integer nanoseconds. Zero values are treated as "not set".
type JsonConfig struct {
	APIBaseURL      string         `json:"api_base_url"`
	LocalDBPath     string         `json:"local_db_path"`
	DownloadDir     string         `json:"download_dir"`
	NotificationTTL timex.Duration `json:"notification_ttl"`
	ProgressTick    timex.Duration `json:"progress_tick"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. If no file is given, nothing happens. Read or
// unmarshal errors panic; configuration is resolved once at startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.LocalDBPath != "" {
		cfg.LocalDBPath = jc.LocalDBPath
	}
	if jc.DownloadDir != "" {
		cfg.DownloadDir = jc.DownloadDir
	}
	if jc.NotificationTTL.Duration != 0 {
		cfg.NotificationTTL = jc.NotificationTTL.Duration
	}
	if jc.ProgressTick.Duration != 0 {
		cfg.ProgressTick = jc.ProgressTick.Duration
	}
}
