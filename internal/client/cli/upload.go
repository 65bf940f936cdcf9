package cli

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Upload walks the user through one invoice upload: pick a file, pick the
// invoice type, then submit. Extraction progress is echoed while the backend
// works and the result links are printed on success.
func (a *App) Upload(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter path to a PDF or image file", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.dash.SelectFile(path); err != nil {
		a.flushNotifications()
		return err
	}

	kind, err := getSimpleText(a.reader, "Invoice type (printed/handwritten, empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	if kind != "" {
		if err := a.dash.SetInvoiceType(kind); err != nil {
			printlnFn("Invoice type must be 'printed' or 'handwritten'")
			return err
		}
	}

	done := make(chan struct{})
	go a.echoProgress(done)

	err = a.dash.SubmitUpload(ctx)
	close(done)

	if err == nil {
		excel, word := a.dash.ResultLinks()
		printlnFn("Excel result:", excel)
		printlnFn("Word result:", word)
	}
	a.flushNotifications()
	return err
}

// echoProgress prints the simulated extraction progress until done is closed.
func (a *App) echoProgress(done <-chan struct{}) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			printlnFn(fmt.Sprintf("processing... %d%%", a.dash.Progress()))
		}
	}
}
