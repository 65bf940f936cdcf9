package dashboard

import (
	"context"
	"strings"

	"github.com/exlpro/invoice-cli/internal/client/models"
)

// History returns the in-memory list in the backend's order.
func (d *Dashboard) History() []models.UploadRecord {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.UploadRecord, len(d.history))
	copy(out, d.history)
	return out
}

// FetchHistory replaces the list wholesale with the backend's current
// ordering. No client-side sort is applied. On error the list is left as-is.
func (d *Dashboard) FetchHistory(ctx context.Context) error {
	token, err := d.requireToken()
	if err != nil {
		return err
	}

	records, err := d.api.GetHistory(ctx, token)
	if err != nil {
		d.Notify(models.NotificationError, userMessage(err, "Failed to load history"))
		return err
	}

	d.mu.Lock()
	d.history = records
	d.mu.Unlock()
	return nil
}

// Filter returns the records matching a case-insensitive substring search on
// filename or invoice-type string, intersected with an exact invoice-type
// filter ("all" matches everything). It is a pure derived view over the
// current list.
func (d *Dashboard) Filter(searchTerm, filterType string) []models.UploadRecord {
	return FilterRecords(d.History(), searchTerm, filterType)
}

// FilterRecords is the filtering rule behind Dashboard.Filter, exposed for
// direct use on any record slice.
func FilterRecords(records []models.UploadRecord, searchTerm, filterType string) []models.UploadRecord {
	term := strings.ToLower(searchTerm)

	out := make([]models.UploadRecord, 0, len(records))
	for _, rec := range records {
		matchesSearch := strings.Contains(strings.ToLower(rec.OriginalFilename), term) ||
			strings.Contains(strings.ToLower(string(rec.InvoiceType)), term)
		matchesFilter := filterType == "all" || string(rec.InvoiceType) == filterType
		if matchesSearch && matchesFilter {
			out = append(out, rec)
		}
	}
	return out
}

// Stats aggregates counters over the full history list.
func (d *Dashboard) Stats() models.HistoryStats {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := models.HistoryStats{Total: len(d.history)}
	for _, rec := range d.history {
		if rec.ExcelFilename != "" {
			s.Excel++
		}
		if rec.WordFilename != "" {
			s.Word++
		}
		if rec.InvoiceType == models.InvoiceTypePrinted {
			s.Printed++
		}
	}
	return s
}
