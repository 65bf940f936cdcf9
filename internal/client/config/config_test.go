package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:5000", cfg.APIBaseURL)
	require.Equal(t, "exlpro.db", cfg.LocalDBPath)
	require.Equal(t, "downloads", cfg.DownloadDir)
	require.Equal(t, 5*time.Second, cfg.NotificationTTL)
	require.Equal(t, 200*time.Millisecond, cfg.ProgressTick)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cli", "-a", "http://api.example.org", "-o", "/tmp/dl"}

	cfg := LoadConfig()

	require.Equal(t, "http://api.example.org", cfg.APIBaseURL)
	require.Equal(t, "/tmp/dl", cfg.DownloadDir)
	require.Equal(t, "exlpro.db", cfg.LocalDBPath)
}
