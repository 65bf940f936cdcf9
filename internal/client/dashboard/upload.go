package dashboard

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/exlpro/invoice-cli/internal/client/models"
	"github.com/exlpro/invoice-cli/internal/common"
)

// Extensions accepted for upload: PDF or image, matching the backend's
// accept list.
var acceptedExtensions = map[string]struct{}{
	".pdf":  {},
	".png":  {},
	".jpg":  {},
	".jpeg": {},
}

// SelectFile picks the file for the next upload. It is rejected while a
// submission is in flight. A new selection replaces the previous one and
// clears prior result links and errors.
func (d *Dashboard) SelectFile(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := acceptedExtensions[ext]; !ok {
		d.Notify(models.NotificationError, "Please select a PDF or image file")
		return common.ErrUnsupportedFileType
	}

	d.mu.Lock()
	if d.upload.submitting {
		d.mu.Unlock()
		d.Notify(models.NotificationError, "An upload is already in progress")
		return common.ErrUploadInProgress
	}

	d.upload.path = path
	d.upload.filename = filepath.Base(path)
	d.upload.progress = 0
	d.excelURL = ""
	d.wordURL = ""
	d.saveErr = ""
	d.mu.Unlock()
	return nil
}

// SetInvoiceType selects the classification sent with the next upload.
func (d *Dashboard) SetInvoiceType(s string) error {
	t, err := models.ParseInvoiceType(s)
	if err != nil {
		d.Notify(models.NotificationError, "Invoice type must be printed or handwritten")
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.upload.invoiceType = t
	return nil
}

// SelectedFile returns the name of the currently selected file ("" if none).
func (d *Dashboard) SelectedFile() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.upload.filename
}

// InvoiceType returns the currently selected invoice type.
func (d *Dashboard) InvoiceType() models.InvoiceType {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.upload.invoiceType
}

// Submitting reports whether an upload is in flight.
func (d *Dashboard) Submitting() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.upload.submitting
}

// Progress returns the simulated upload progress percentage.
func (d *Dashboard) Progress() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.upload.progress
}

// ResultLinks returns the download links of the last successful upload,
// rendered under the configured API base ("" when absent).
func (d *Dashboard) ResultLinks() (excel, word string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	base := d.api.BaseURL()
	if d.excelURL != "" {
		excel = base + d.excelURL
	}
	if d.wordURL != "" {
		word = base + d.wordURL
	}
	return excel, word
}

// SubmitUpload sends the selected file as multipart form data. Preconditions
// (file selected, token present, no upload in flight) fail fast with a
// notification and no network call. While in flight a cosmetic progress value
// ticks from 0 toward 90 and is snapped to 100 on success. On failure the
// file selection is kept for retry.
func (d *Dashboard) SubmitUpload(ctx context.Context) error {
	stop := make(chan struct{})

	d.mu.Lock()
	if d.upload.submitting {
		d.mu.Unlock()
		d.Notify(models.NotificationError, "An upload is already in progress")
		return common.ErrUploadInProgress
	}
	// Claim the busy flag under the same lock as the check, so a concurrent
	// call cannot slip past it while preconditions are still being verified.
	d.upload.submitting = true
	d.upload.stop = stop
	path := d.upload.path
	filename := d.upload.filename
	invoiceType := d.upload.invoiceType
	d.mu.Unlock()

	abort := func() {
		d.mu.Lock()
		d.upload.submitting = false
		if d.upload.stop == stop {
			close(stop)
			d.upload.stop = nil
		}
		d.mu.Unlock()
	}

	if path == "" {
		abort()
		d.Notify(models.NotificationError, "Please select a PDF or image file")
		return common.ErrNoFileSelected
	}

	token, err := d.requireToken()
	if err != nil {
		abort()
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		abort()
		d.Notify(models.NotificationError, "Cannot read selected file")
		return err
	}
	defer f.Close()

	d.mu.Lock()
	d.upload.progress = 0
	d.excelURL = ""
	d.wordURL = ""
	d.mu.Unlock()

	go d.runProgress(stop)

	d.log.Debug(ctx, "uploading invoice", "file", filename, "type", invoiceType)
	res, err := d.api.Upload(ctx, token, f, filename, invoiceType)

	d.mu.Lock()
	d.upload.submitting = false
	if d.upload.stop != nil {
		close(d.upload.stop)
		d.upload.stop = nil
	}
	if err != nil {
		d.upload.progress = 0
	} else {
		d.upload.progress = 100
		d.excelURL = res.ExcelURL
		d.wordURL = res.WordURL
	}
	d.mu.Unlock()

	if err != nil {
		d.Notify(models.NotificationError, userMessage(err, "Upload failed. Please try again."))
		return err
	}

	d.Notify(models.NotificationSuccess, "File uploaded and processed successfully!")
	_ = d.FetchHistory(ctx)
	return nil
}

// runProgress advances the cosmetic progress value in +10 steps on a fixed
// interval, clamped at 90 until the upload resolves.
func (d *Dashboard) runProgress(stop <-chan struct{}) {
	ticker := time.NewTicker(d.opts.ProgressTick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			d.mu.Lock()
			if d.upload.submitting && d.upload.progress < 90 {
				d.upload.progress += 10
			}
			d.mu.Unlock()
		}
	}
}
