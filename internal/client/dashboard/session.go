package dashboard

import (
	"context"

	"github.com/exlpro/invoice-cli/internal/client/localstore"
	"github.com/exlpro/invoice-cli/internal/client/models"
)

// Login authenticates against the backend. On success the token is stored in
// memory and in the local store, and profile and history refreshes are
// triggered automatically. On failure the session stays unauthenticated.
func (d *Dashboard) Login(ctx context.Context, username, password string) error {
	token, err := d.api.Login(ctx, username, password)
	if err != nil {
		d.Notify(models.NotificationError, userMessage(err, "Server error. Please try again."))
		return err
	}

	d.mu.Lock()
	d.token = token
	d.mu.Unlock()

	if err := d.settings.Set(ctx, localstore.KeyToken, token); err != nil {
		d.log.Warn(ctx, "persisting token failed", "err", err)
	}

	d.Notify(models.NotificationSuccess, "Login successful!")

	// Errors here surface as their own notifications; the login itself stands.
	_ = d.FetchProfile(ctx)
	_ = d.FetchHistory(ctx)

	return nil
}

// Register creates a new account. No token is issued; the user is expected to
// log in afterwards.
func (d *Dashboard) Register(ctx context.Context, username, password string) error {
	if _, err := d.api.Register(ctx, username, password); err != nil {
		d.Notify(models.NotificationError, userMessage(err, "Server error. Please try again."))
		return err
	}

	d.Notify(models.NotificationSuccess, "Registration successful! Please log in.")
	return nil
}

// Logout clears the token and all dependent in-memory state: profile (back to
// all-empty defaults), history, pending result links, and any edit draft.
// It is unconditional, makes no backend call, and cannot fail.
func (d *Dashboard) Logout(ctx context.Context) {
	d.mu.Lock()
	d.token = ""
	d.profile = models.Profile{}
	d.draft = models.Profile{}
	d.mode = ModeViewing
	d.saveErr = ""
	d.history = nil
	d.excelURL = ""
	d.wordURL = ""
	d.mu.Unlock()

	if err := d.settings.Delete(ctx, localstore.KeyToken); err != nil {
		d.log.Warn(ctx, "clearing persisted token failed", "err", err)
	}

	d.Notify(models.NotificationSuccess, "Logged out successfully")
}
