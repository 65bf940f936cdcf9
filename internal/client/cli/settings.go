package cli

import (
	"context"

	"github.com/exlpro/invoice-cli/internal/buildinfo"
)

// DarkMode toggles the persisted dark theme preference.
func (a *App) DarkMode(ctx context.Context) error {
	on, err := a.dash.ToggleDarkMode(ctx)
	if err != nil {
		a.log.Error(ctx, "error saving theme preference", "error", err)
		return err
	}
	if on {
		printlnFn("Dark mode on")
	} else {
		printlnFn("Dark mode off")
	}
	return nil
}

// About prints version information and the configured backend address.
func (a *App) About(ctx context.Context) error {
	printlnFn("EXLPRO invoice dashboard")
	printlnFn("Version:", buildinfo.Version)
	printlnFn("Build date:", buildinfo.BuildDate)
	printlnFn("Backend:", a.config.APIBaseURL)
	return nil
}
