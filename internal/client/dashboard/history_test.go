package dashboard

import (
	"context"
	"testing"

	"github.com/exlpro/invoice-cli/internal/client/api"
	"github.com/exlpro/invoice-cli/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHistory() []models.UploadRecord {
	return []models.UploadRecord{
		{ID: 3, UploadTime: "2026-08-31T10:00:00Z", InvoiceType: models.InvoiceTypePrinted, OriginalFilename: "Invoice-March.pdf", ExcelFilename: "m.xlsx", WordFilename: "m.docx"},
		{ID: 2, UploadTime: "2026-08-30T10:00:00Z", InvoiceType: models.InvoiceTypeHandwritten, OriginalFilename: "receipt.png", ExcelFilename: "r.xlsx"},
		{ID: 1, UploadTime: "2026-08-29T10:00:00Z", InvoiceType: models.InvoiceTypePrinted, OriginalFilename: "statement.jpg"},
	}
}

func TestFetchHistory_ReplacesListWholesale(t *testing.T) {
	a := &fakeAPI{history: sampleHistory()}
	d := loggedInDash(t, a)

	require.NoError(t, d.FetchHistory(context.Background()))

	h := d.History()
	require.Len(t, h, 3)
	require.Equal(t, int64(3), h[0].ID, "backend order is authoritative")
	require.Equal(t, int64(1), h[2].ID)
}

func TestFetchHistory_ErrorLeavesListAsIs(t *testing.T) {
	a := &fakeAPI{history: sampleHistory()}
	d := loggedInDash(t, a)
	require.NoError(t, d.FetchHistory(context.Background()))

	a.mu.Lock()
	a.historyErr = &api.BackendError{Message: "db down"}
	a.mu.Unlock()

	require.Error(t, d.FetchHistory(context.Background()))
	require.Len(t, d.History(), 3, "list untouched on error")
	require.Contains(t, notificationMessages(d), "db down")
}

func TestFilter_EmptyTermAndAllReturnsFullListInOrder(t *testing.T) {
	records := sampleHistory()
	got := FilterRecords(records, "", "all")
	assert.Equal(t, records, got)
}

func TestFilter_ExactTypeFilter(t *testing.T) {
	got := FilterRecords(sampleHistory(), "", "printed")
	require.Len(t, got, 2)
	for _, rec := range got {
		require.Equal(t, models.InvoiceTypePrinted, rec.InvoiceType)
	}
}

func TestFilter_TypeFilterIsCaseSensitiveExactMatch(t *testing.T) {
	got := FilterRecords(sampleHistory(), "", "Printed")
	require.Empty(t, got)
}

func TestFilter_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := FilterRecords(sampleHistory(), "invoice-march", "all")
	require.Len(t, got, 1)
	require.Equal(t, "Invoice-March.pdf", got[0].OriginalFilename)
}

func TestFilter_SearchMatchesInvoiceTypeString(t *testing.T) {
	got := FilterRecords(sampleHistory(), "HANDWRITTEN", "all")
	require.Len(t, got, 1)
	require.Equal(t, int64(2), got[0].ID)
}

func TestFilter_SearchIntersectsWithTypeFilter(t *testing.T) {
	// "e" appears in every filename, the type filter narrows it down.
	got := FilterRecords(sampleHistory(), "e", "handwritten")
	require.Len(t, got, 1)
	require.Equal(t, "receipt.png", got[0].OriginalFilename)
}

func TestFilter_NoMatches(t *testing.T) {
	got := FilterRecords(sampleHistory(), "zzz", "all")
	require.Empty(t, got)
}

func TestStats(t *testing.T) {
	a := &fakeAPI{history: sampleHistory()}
	d := loggedInDash(t, a)
	require.NoError(t, d.FetchHistory(context.Background()))

	s := d.Stats()
	require.Equal(t, models.HistoryStats{Total: 3, Excel: 2, Word: 1, Printed: 2}, s)
}
