package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/exlpro/invoice-cli/internal/client/models"
	"github.com/exlpro/invoice-cli/internal/common"
)

// HTTPClient implements Client over JSON/HTTP.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient builds a client for the given API base URL, e.g.
// "http://localhost:5000". A trailing slash is trimmed.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		// No timeout: a hung request blocks only its own caller.
		hc: &http.Client{},
	}
}

func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// apiResponse covers every JSON body shape the backend produces. Absent
// fields stay zero-valued.
type apiResponse struct {
	Error   string                `json:"error"`
	Message string                `json:"message"`
	Token   string                `json:"token"`
	History []models.UploadRecord `json:"history"`
	models.Profile
	models.UploadResult
}

func (c *HTTPClient) Register(ctx context.Context, username, password string) (string, error) {
	resp, err := c.postJSON(ctx, "/api/register", "", credentialsRequest{Username: username, Password: password})
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := c.postJSON(ctx, "/api/login", "", credentialsRequest{Username: username, Password: password})
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context, token string) (models.Profile, error) {
	resp, err := c.get(ctx, "/api/profile", token)
	if err != nil {
		return models.Profile{}, err
	}
	return resp.Profile, nil
}

func (c *HTTPClient) SaveProfile(ctx context.Context, token string, payload models.ProfilePayload) error {
	_, err := c.postJSON(ctx, "/api/profile", token, payload)
	return err
}

func (c *HTTPClient) GetHistory(ctx context.Context, token string) ([]models.UploadRecord, error) {
	resp, err := c.get(ctx, "/api/history", token)
	if err != nil {
		return nil, err
	}
	return resp.History, nil
}

func (c *HTTPClient) Upload(ctx context.Context, token string, file io.Reader, filename string, invoiceType models.InvoiceType) (models.UploadResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("multipart: %w", err)
	}
	if _, err := io.Copy(fw, file); err != nil {
		return models.UploadResult{}, fmt.Errorf("reading file: %w", err)
	}
	if err := mw.WriteField("invoice_type", string(invoiceType)); err != nil {
		return models.UploadResult{}, fmt.Errorf("multipart: %w", err)
	}
	if err := mw.Close(); err != nil {
		return models.UploadResult{}, fmt.Errorf("multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &body)
	if err != nil {
		return models.UploadResult{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	setAuth(req, token)

	resp, err := c.do(req)
	if err != nil {
		return models.UploadResult{}, err
	}
	return resp.UploadResult, nil
}

func (c *HTTPClient) Download(ctx context.Context, token, filename string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/download/"+filename, nil)
	if err != nil {
		return nil, err
	}
	setAuth(req, token)

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if res.StatusCode >= 300 {
		defer res.Body.Close()
		return nil, statusError(res)
	}
	return res.Body, nil
}

func (c *HTTPClient) get(ctx context.Context, path, token string) (*apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	setAuth(req, token)
	return c.do(req)
}

func (c *HTTPClient) postJSON(ctx context.Context, path, token string, payload any) (*apiResponse, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	setAuth(req, token)
	return c.do(req)
}

// do executes the request and decodes the JSON body. A body carrying an
// "error" field wins over the HTTP status so the user sees the backend's
// literal message.
func (c *HTTPClient) do(req *http.Request) (*apiResponse, error) {
	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	var resp apiResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		if res.StatusCode >= 300 {
			return nil, statusError(res)
		}
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if resp.Error != "" {
		return nil, &BackendError{Message: resp.Error}
	}
	if res.StatusCode >= 300 {
		return nil, statusError(res)
	}
	return &resp, nil
}

func setAuth(req *http.Request, token string) {
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
}

func statusError(res *http.Response) error {
	switch res.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		return fmt.Errorf("unexpected status: %s", res.Status)
	}
}
