package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/exlpro/invoice-cli/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice", body["username"])
		require.Equal(t, "x", body["password"])

		json.NewEncoder(w).Encode(map[string]string{"token": "abc"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	token, err := c.Login(context.Background(), "alice", "x")
	require.NoError(t, err)
	require.Equal(t, "abc", token)
}

func TestLogin_BackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.Login(context.Background(), "alice", "wrong")

	var be *BackendError
	require.ErrorAs(t, err, &be)
	require.Equal(t, "invalid credentials", be.Message)
}

func TestLogin_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewHTTPClient(srv.URL)
	_, err := c.Login(context.Background(), "alice", "x")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestRegister_ReturnsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/register", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"message": "user created"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	msg, err := c.Register(context.Background(), "bob", "pw")
	require.NoError(t, err)
	require.Equal(t, "user created", msg)
}

func TestGetProfile_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]string{"username": "alice", "email": "a@b.c"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	p, err := c.GetProfile(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Equal(t, "alice", p.Username)
	require.Equal(t, "a@b.c", p.Email)
	require.Empty(t, p.City, "absent fields keep their empty default")
}

func TestSaveProfile_PayloadIsExactlyTenFields(t *testing.T) {
	var sent map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/profile", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	payload := models.Profile{Username: "alice", Email: "a@b.c", Bio: "hi"}.Payload()
	require.NoError(t, c.SaveProfile(context.Background(), "tok", payload))

	assert.Len(t, sent, 10)
	assert.NotContains(t, sent, "username")
	assert.Equal(t, "a@b.c", sent["email"])
	assert.Equal(t, "hi", sent["bio"])
}

func TestGetHistory_PreservesBackendOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"history":[
			{"id":3,"upload_time":"2026-08-31T10:00:00Z","invoice_type":"printed","original_filename":"c.pdf"},
			{"id":1,"upload_time":"2026-08-29T10:00:00Z","invoice_type":"handwritten","original_filename":"a.png"}
		]}`)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	h, err := c.GetHistory(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, h, 2)
	require.Equal(t, int64(3), h[0].ID, "no client-side sort is applied")
	require.Equal(t, int64(1), h[1].ID)
}

func TestUpload_MultipartFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/upload", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "handwritten", r.FormValue("invoice_type"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, "inv.pdf", hdr.Filename)
		content, err := io.ReadAll(f)
		require.NoError(t, err)
		require.Equal(t, "%PDF-fake", string(content))

		json.NewEncoder(w).Encode(map[string]string{"excel_url": "/files/a.xlsx", "word_url": "/files/a.docx"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	res, err := c.Upload(context.Background(), "tok", strings.NewReader("%PDF-fake"), "inv.pdf", models.InvoiceTypeHandwritten)
	require.NoError(t, err)
	require.Equal(t, "/files/a.xlsx", res.ExcelURL)
	require.Equal(t, "/files/a.docx", res.WordURL)
}

func TestUpload_BackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "extraction failed"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.Upload(context.Background(), "tok", strings.NewReader("x"), "inv.pdf", models.InvoiceTypePrinted)

	var be *BackendError
	require.ErrorAs(t, err, &be)
	require.Equal(t, "extraction failed", be.Message)
}

func TestDownload_StreamsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/download/a.xlsx", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		io.WriteString(w, "binary-bytes")
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	rc, err := c.Download(context.Background(), "tok", "a.xlsx")
	require.NoError(t, err)
	defer rc.Close()

	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "binary-bytes", string(b))
}

func TestStatusMapping_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.GetHistory(context.Background(), "stale")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestNewHTTPClient_TrimsTrailingSlash(t *testing.T) {
	c := NewHTTPClient("http://localhost:5000/")
	require.Equal(t, "http://localhost:5000", c.BaseURL())
}

func TestBackendErrorWinsOverStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "file too large"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.Upload(context.Background(), "tok", strings.NewReader("x"), "big.pdf", models.InvoiceTypePrinted)

	var be *BackendError
	require.ErrorAs(t, err, &be, "backend message must win over HTTP status")
	require.Equal(t, "file too large", be.Message)
	require.False(t, errors.Is(err, ErrUnavailable))
}
