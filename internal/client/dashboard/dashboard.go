package dashboard

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/exlpro/invoice-cli/internal/client/api"
	"github.com/exlpro/invoice-cli/internal/client/localstore"
	"github.com/exlpro/invoice-cli/internal/client/models"
	"github.com/exlpro/invoice-cli/internal/common"
	"github.com/exlpro/invoice-cli/internal/logging"
)

// ProfileMode is the explicit view/edit state of the profile screen.
type ProfileMode string

const (
	ModeViewing ProfileMode = "viewing"
	ModeEditing ProfileMode = "editing"
)

// Options carries the tunable knobs of the dashboard.
type Options struct {
	// NotificationTTL is how long a notification stays visible.
	NotificationTTL time.Duration
	// ProgressTick is the cadence of the simulated upload progress.
	ProgressTick time.Duration
	// DownloadDir is where result files are saved.
	DownloadDir string
}

type uploadState struct {
	path        string
	filename    string
	invoiceType models.InvoiceType
	submitting  bool
	progress    int
	stop        chan struct{}
}

// Dashboard owns all client-side view state.
type Dashboard struct {
	mu sync.Mutex

	api      api.Client
	settings localstore.Settings
	log      logging.Logger
	opts     Options

	token string

	profile models.Profile
	draft   models.Profile
	mode    ProfileMode
	saveErr string

	history []models.UploadRecord

	upload   uploadState
	excelURL string
	wordURL  string

	notifications []models.Notification
	timers        map[int64]*time.Timer
	lastNotifID   int64

	darkMode bool
}

// New builds a Dashboard around the given API client and settings store.
func New(apiClient api.Client, settings localstore.Settings, log logging.Logger, opts Options) *Dashboard {
	if opts.NotificationTTL <= 0 {
		opts.NotificationTTL = 5 * time.Second
	}
	if opts.ProgressTick <= 0 {
		opts.ProgressTick = 200 * time.Millisecond
	}
	return &Dashboard{
		api:      apiClient,
		settings: settings,
		log:      log,
		opts:     opts,
		mode:     ModeViewing,
		upload:   uploadState{invoiceType: models.InvoiceTypePrinted},
		timers:   make(map[int64]*time.Timer),
	}
}

// Restore loads persisted state (token, dark-mode flag) from the settings
// store. Call once at startup.
func (d *Dashboard) Restore(ctx context.Context) error {
	token, err := d.settings.Get(ctx, localstore.KeyToken)
	if err != nil {
		return err
	}
	dark, err := d.settings.Get(ctx, localstore.KeyDarkMode)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.token = token
	d.darkMode = dark == "true"
	return nil
}

// Close stops all outstanding timers. State updates after Close are
// suppressed by the timers having been stopped.
func (d *Dashboard) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for id, t := range d.timers {
		t.Stop()
		delete(d.timers, id)
	}
	if d.upload.stop != nil {
		close(d.upload.stop)
		d.upload.stop = nil
	}
}

// Authenticated reports whether a session token is present.
func (d *Dashboard) Authenticated() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return strings.TrimSpace(d.token) != ""
}

// Token returns the current bearer token ("" when logged out).
func (d *Dashboard) Token() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.token
}

// Username returns the confirmed profile's username.
func (d *Dashboard) Username() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.profile.Username
}

// DarkMode returns the persisted dark-mode flag.
func (d *Dashboard) DarkMode() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.darkMode
}

// ToggleDarkMode flips the dark-mode flag and persists it.
func (d *Dashboard) ToggleDarkMode(ctx context.Context) (bool, error) {
	d.mu.Lock()
	d.darkMode = !d.darkMode
	v := d.darkMode
	d.mu.Unlock()

	if err := d.settings.Set(ctx, localstore.KeyDarkMode, strconv.FormatBool(v)); err != nil {
		return v, err
	}
	return v, nil
}

// requireToken guards authenticated operations: with an empty token it raises
// the "log in again" notification and short-circuits before any network call.
func (d *Dashboard) requireToken() (string, error) {
	d.mu.Lock()
	token := d.token
	d.mu.Unlock()

	if strings.TrimSpace(token) == "" {
		d.Notify(models.NotificationError, "Please log in again.")
		return "", common.ErrNotLoggedIn
	}
	return token, nil
}

// userMessage picks the text shown to the user for a failed call: the
// backend's literal message when it reported one, fallback otherwise.
func userMessage(err error, fallback string) string {
	var be *api.BackendError
	if errors.As(err, &be) {
		return be.Message
	}
	return fallback
}
