package dashboard

import (
	"context"
	"fmt"

	"github.com/exlpro/invoice-cli/internal/client/models"
)

// Profile returns the confirmed profile (from the last successful fetch).
func (d *Dashboard) Profile() models.Profile {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.profile
}

// Draft returns the uncommitted edit draft.
func (d *Dashboard) Draft() models.Profile {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draft
}

// Mode returns the current view/edit state of the profile screen.
func (d *Dashboard) Mode() ProfileMode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// SaveError returns the inline error from the last failed save, shown while
// edit mode stays active.
func (d *Dashboard) SaveError() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.saveErr
}

// FetchProfile replaces the confirmed profile with the backend's record.
// Fields absent from the response keep their empty defaults. On error the
// confirmed profile is left unchanged.
func (d *Dashboard) FetchProfile(ctx context.Context) error {
	token, err := d.requireToken()
	if err != nil {
		return err
	}

	p, err := d.api.GetProfile(ctx, token)
	if err != nil {
		d.Notify(models.NotificationError, userMessage(err, "Failed to load profile"))
		return err
	}

	d.mu.Lock()
	d.profile = p
	d.mu.Unlock()
	return nil
}

// StartEdit enters edit mode with a draft copied from the confirmed profile.
func (d *Dashboard) StartEdit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.draft = d.profile
	d.saveErr = ""
	d.mode = ModeEditing
}

// CancelEdit discards the draft and returns to viewing. The confirmed
// profile is untouched regardless of draft mutations.
func (d *Dashboard) CancelEdit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.draft = models.Profile{}
	d.saveErr = ""
	d.mode = ModeViewing
}

// SetDraftField mutates one named field of the draft. Unknown names and the
// read-only username field are rejected.
func (d *Dashboard) SetDraftField(name, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch name {
	case "email":
		d.draft.Email = value
	case "full_name":
		d.draft.FullName = value
	case "phone":
		d.draft.Phone = value
	case "company":
		d.draft.Company = value
	case "address":
		d.draft.Address = value
	case "city":
		d.draft.City = value
	case "state":
		d.draft.State = value
	case "country":
		d.draft.Country = value
	case "zip":
		d.draft.Zip = value
	case "bio":
		d.draft.Bio = value
	default:
		return fmt.Errorf("unknown profile field %q", name)
	}
	return nil
}

// SaveProfile sends the draft's ten mutable fields to the backend. On success
// edit mode ends and the profile is re-fetched to reconcile. On failure edit
// mode stays active and the error is kept for inline display.
func (d *Dashboard) SaveProfile(ctx context.Context) error {
	token, err := d.requireToken()
	if err != nil {
		return err
	}

	d.mu.Lock()
	payload := d.draft.Payload()
	d.mu.Unlock()

	if err := d.api.SaveProfile(ctx, token, payload); err != nil {
		msg := userMessage(err, "Failed to update profile. Please try again.")
		d.mu.Lock()
		d.saveErr = msg
		d.mu.Unlock()
		d.Notify(models.NotificationError, msg)
		return err
	}

	d.mu.Lock()
	d.draft = models.Profile{}
	d.saveErr = ""
	d.mode = ModeViewing
	d.mu.Unlock()

	d.Notify(models.NotificationSuccess, "Profile saved")
	return d.FetchProfile(ctx)
}
