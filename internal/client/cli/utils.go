package cli

import (
	"fmt"
	"strings"

	"github.com/exlpro/invoice-cli/internal/client/models"
)

// flushNotifications prints dashboard notifications that appeared since the
// last flush. Notifications stay visible inside the dashboard until their
// timer expires; the watermark keeps the terminal from repeating them.
func (a *App) flushNotifications() {
	for _, n := range a.dash.Notifications() {
		if n.ID <= a.lastShownNotifID {
			continue
		}
		a.lastShownNotifID = n.ID
		printlnFn(fmt.Sprintf("[%s] %s", n.Type, n.Message))
	}
}

func formatRecord(r models.UploadRecord) string {
	results := make([]string, 0, 2)
	if r.ExcelFilename != "" {
		results = append(results, r.ExcelFilename)
	}
	if r.WordFilename != "" {
		results = append(results, r.WordFilename)
	}
	res := "-"
	if len(results) > 0 {
		res = strings.Join(results, ", ")
	}
	return fmt.Sprintf("%-5d %-20s %-12s %-30s %s", r.ID, r.UploadTime, r.InvoiceType, r.OriginalFilename, res)
}

func printRecords(records []models.UploadRecord) {
	if len(records) == 0 {
		printlnFn("No uploads found.")
		return
	}
	printlnFn(fmt.Sprintf("%-5s %-20s %-12s %-30s %s", "ID", "UPLOADED", "TYPE", "FILE", "RESULTS"))
	for _, r := range records {
		printlnFn(formatRecord(r))
	}
}
