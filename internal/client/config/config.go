package config

import "time"

// Config holds runtime settings for the dashboard CLI.
//
// Fields:
//   - APIBaseURL: base URL of the extraction backend, e.g. "http://localhost:5000".
//   - LocalDBPath: path of the sqlite file holding persisted client state.
//   - DownloadDir: directory result files are saved into.
//   - NotificationTTL: how long a notification stays visible.
//   - ProgressTick: cadence of the simulated upload progress bar.
type Config struct {
	APIBaseURL      string
	LocalDBPath     string
	DownloadDir     string
	NotificationTTL time.Duration
	ProgressTick    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000"
	c.LocalDBPath = "exlpro.db"
	c.DownloadDir = "downloads"
	c.NotificationTTL = 5 * time.Second
	c.ProgressTick = 200 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (optionally via a .env file), a JSON file (if given) and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
