package config

import (
	"flag"
	"os"

	"github.com/exlpro/invoice-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend API (default from Config)
//	-d string   sqlite database path for persisted client state
//	-o string   downloads directory
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.LocalDBPath, "d", cfg.LocalDBPath, "sqlite database path")
	fs.StringVar(&cfg.DownloadDir, "o", cfg.DownloadDir, "downloads directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
