package dashboard

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/exlpro/invoice-cli/internal/client/models"
	"github.com/exlpro/invoice-cli/internal/filex"
	"github.com/google/uuid"
)

// Download fetches a generated result file into the downloads directory and
// returns the final local path. The target may be a bare filename or a
// backend path like "/files/a.xlsx"; only its base name is used. The file is
// staged under a temporary name and renamed once fully written, so a failed
// download never leaves a partial result behind.
func (d *Dashboard) Download(ctx context.Context, target string) (string, error) {
	token, err := d.requireToken()
	if err != nil {
		return "", err
	}

	filename := path.Base(target)
	if filename == "." || filename == "/" {
		d.Notify(models.NotificationError, "Nothing to download")
		return "", fmt.Errorf("invalid download target %q", target)
	}

	rc, err := d.api.Download(ctx, token, filename)
	if err != nil {
		d.Notify(models.NotificationError, userMessage(err, "Download failed. Please try again."))
		return "", err
	}
	defer rc.Close()

	dir, err := filex.EnsureDir(d.opts.DownloadDir)
	if err != nil {
		d.Notify(models.NotificationError, "Cannot create downloads directory")
		return "", err
	}
	staging, err := filex.EnsureSubDir(dir, ".partial")
	if err != nil {
		d.Notify(models.NotificationError, "Cannot create downloads directory")
		return "", err
	}

	tmpPath := filepath.Join(staging, uuid.NewString())
	tmp, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := io.Copy(tmp, rc); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		d.Notify(models.NotificationError, "Download failed. Please try again.")
		return "", fmt.Errorf("writing download: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}

	finalPath := filepath.Join(dir, filename)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("moving download into place: %w", err)
	}

	d.Notify(models.NotificationSuccess, "Saved "+filename)
	return finalPath, nil
}
