package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/exlpro/invoice-cli/internal/client/models"
)

// profileFields lists the editable profile fields in display order, keyed by
// the names the backend understands.
var profileFields = []string{
	"email", "full_name", "phone", "company", "address",
	"city", "state", "country", "zip", "bio",
}

func profileFieldValue(p models.Profile, name string) string {
	switch name {
	case "email":
		return p.Email
	case "full_name":
		return p.FullName
	case "phone":
		return p.Phone
	case "company":
		return p.Company
	case "address":
		return p.Address
	case "city":
		return p.City
	case "state":
		return p.State
	case "country":
		return p.Country
	case "zip":
		return p.Zip
	case "bio":
		return p.Bio
	}
	return ""
}

func printProfile(p models.Profile) {
	printlnFn("username:", p.Username)
	for _, f := range profileFields {
		printlnFn(fmt.Sprintf("%s: %s", f, profileFieldValue(p, f)))
	}
}

// ShowProfile fetches the latest profile from the backend and prints it.
func (a *App) ShowProfile(ctx context.Context) error {
	err := a.dash.FetchProfile(ctx)
	if err == nil {
		printProfile(a.dash.Profile())
	}
	a.flushNotifications()
	return err
}

// EditProfile runs an interactive edit session over the billing profile.
//
// The current values are shown, then the user enters "field=value" lines,
// one per line, ending with an empty line. Afterwards the draft is either
// saved to the backend or discarded. Username cannot be changed.
func (a *App) EditProfile(ctx context.Context) error {
	a.dash.StartEdit()
	printProfile(a.dash.Draft())
	printlnFn("Enter changes in the format field=value (empty line to finish)")

	for {
		line, readErr := a.reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		name, value, found := strings.Cut(line, "=")
		if !found {
			printlnFn("Expected field=value, got:", line)
		} else if err := a.dash.SetDraftField(strings.TrimSpace(name), value); err != nil {
			printlnFn("Unknown field:", strings.TrimSpace(name))
		}
		if readErr != nil {
			break
		}
	}

	answer, err := getSimpleText(a.reader, "Save changes? (y/n)", os.Stdout)
	if err != nil {
		a.dash.CancelEdit()
		return err
	}
	if strings.ToLower(answer) != "y" {
		a.dash.CancelEdit()
		printlnFn("Changes discarded.")
		return nil
	}

	err = a.dash.SaveProfile(ctx)
	if err != nil && a.dash.SaveError() != "" {
		printlnFn("Save failed:", a.dash.SaveError())
	}
	a.flushNotifications()
	return err
}
