package api

import (
	"context"
	"io"

	"github.com/exlpro/invoice-cli/internal/client/models"
)

// Client is the API contract used by the dashboard.
type Client interface {
	// Register creates a new account and returns the backend's confirmation
	// message. No token is issued.
	Register(ctx context.Context, username, password string) (string, error)

	// Login authenticates and returns a bearer token.
	Login(ctx context.Context, username, password string) (string, error)

	// GetProfile fetches the caller's profile record.
	GetProfile(ctx context.Context, token string) (models.Profile, error)

	// SaveProfile stores the ten mutable profile fields.
	SaveProfile(ctx context.Context, token string, payload models.ProfilePayload) error

	// GetHistory returns past uploads in the backend's order.
	GetHistory(ctx context.Context, token string) ([]models.UploadRecord, error)

	// Upload submits one invoice file as multipart form data and returns the
	// generated result links.
	Upload(ctx context.Context, token string, file io.Reader, filename string, invoiceType models.InvoiceType) (models.UploadResult, error)

	// Download streams a generated result file. The caller must close the
	// returned reader.
	Download(ctx context.Context, token, filename string) (io.ReadCloser, error)

	// BaseURL returns the configured API base, used to render absolute
	// download links.
	BaseURL() string
}
