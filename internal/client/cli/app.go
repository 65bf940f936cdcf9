package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/exlpro/invoice-cli/internal/client/api"
	"github.com/exlpro/invoice-cli/internal/client/config"
	"github.com/exlpro/invoice-cli/internal/client/dashboard"
	"github.com/exlpro/invoice-cli/internal/client/localstore"
	"github.com/exlpro/invoice-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App ties the dashboard state machine to an interactive terminal session.
type App struct {
	config *config.Config
	dash   *dashboard.Dashboard
	store  *localstore.Store
	log    logging.Logger
	reader *bufio.Reader

	// ID of the newest notification already shown to the user, so each
	// one is printed exactly once even though it stays visible in the
	// dashboard until its timer expires.
	lastShownNotifID int64
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	store, err := localstore.Open(ctx, c.LocalDBPath)
	if err != nil {
		log.Error(ctx, "error opening local database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL)

	dash := dashboard.New(apiClient, store.Settings, log, dashboard.Options{
		NotificationTTL: c.NotificationTTL,
		ProgressTick:    c.ProgressTick,
		DownloadDir:     c.DownloadDir,
	})

	if err := dash.Restore(ctx); err != nil {
		log.Warn(ctx, "could not restore saved session", "error", err)
	}

	return &App{
		config: c,
		dash:   dash,
		store:  store,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("EXLPRO invoice dashboard (type 'help' for commands)")

	// A restored session behaves like a fresh login: warm up the profile
	// and history so the first command has data to show.
	if a.dash.Authenticated() {
		_ = a.dash.FetchProfile(ctx)
		_ = a.dash.FetchHistory(ctx)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() {
	a.dash.Close()
	if err := a.store.Close(); err != nil {
		a.log.Error(context.Background(), "error closing local database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.dash.Authenticated()
}

func (a *App) getStatus() string {
	if name := a.dash.Username(); name != "" {
		return fmt.Sprintf("(%s)", name)
	}
	if a.dash.Authenticated() {
		return "(logged in)"
	}
	return ""
}
