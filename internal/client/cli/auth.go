package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username and password and attempts to
// create a new account. The outcome arrives as a dashboard notification,
// which is printed before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	err = a.dash.Register(ctx, userName, string(password))
	a.flushNotifications()
	return err
}

// Login prompts the user for credentials and tries to authenticate.
// On success the dashboard also pulls the profile and upload history,
// so the session is immediately usable.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	err = a.dash.Login(ctx, userName, string(password))
	a.flushNotifications()
	return err
}

// Logout ends the session and discards local session state.
func (a *App) Logout(ctx context.Context) error {
	a.dash.Logout(ctx)
	a.flushNotifications()
	return nil
}
