package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/exlpro/invoice-cli/internal/buildinfo"
	"github.com/exlpro/invoice-cli/internal/client/cli"
	"github.com/exlpro/invoice-cli/internal/client/config"
	"github.com/exlpro/invoice-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
