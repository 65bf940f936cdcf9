package cli

import (
	"context"
	"fmt"
	"os"
)

// History refreshes the upload history from the backend and prints it.
func (a *App) History(ctx context.Context) error {
	err := a.dash.FetchHistory(ctx)
	if err == nil {
		printRecords(a.dash.History())
	}
	a.flushNotifications()
	return err
}

// Search filters the already loaded history. The search term matches the
// original filename or the invoice type, case-insensitively; the type filter
// is an exact match with "all" accepting every record.
func (a *App) Search(ctx context.Context) error {
	term, err := getSimpleText(a.reader, "Search term (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	kind, err := getSimpleText(a.reader, "Type filter (all/printed/handwritten)", os.Stdout)
	if err != nil {
		return err
	}
	if kind == "" {
		kind = "all"
	}

	printRecords(a.dash.Filter(term, kind))
	return nil
}

// Stats prints aggregate counters over the loaded history.
func (a *App) Stats(ctx context.Context) error {
	s := a.dash.Stats()
	printlnFn(fmt.Sprintf("Total uploads: %d", s.Total))
	printlnFn(fmt.Sprintf("Excel results: %d", s.Excel))
	printlnFn(fmt.Sprintf("Word results:  %d", s.Word))
	printlnFn(fmt.Sprintf("Printed type:  %d", s.Printed))
	return nil
}

// Download fetches a generated result file into the downloads directory.
func (a *App) Download(ctx context.Context, target string) error {
	path, err := a.dash.Download(ctx, target)
	if err == nil {
		printlnFn("Downloaded to", path)
	}
	a.flushNotifications()
	return err
}
