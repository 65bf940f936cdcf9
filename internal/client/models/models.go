// Package models defines the data types exchanged between the dashboard
// client and the invoice-extraction backend.
package models

import "github.com/exlpro/invoice-cli/internal/common"

// InvoiceType classifies an uploaded document.
type InvoiceType string

const (
	InvoiceTypePrinted     InvoiceType = "printed"
	InvoiceTypeHandwritten InvoiceType = "handwritten"
)

// Valid reports whether t is one of the supported invoice types.
func (t InvoiceType) Valid() bool {
	return t == InvoiceTypePrinted || t == InvoiceTypeHandwritten
}

// ParseInvoiceType converts a user-supplied string into an InvoiceType.
func ParseInvoiceType(s string) (InvoiceType, error) {
	t := InvoiceType(s)
	if !t.Valid() {
		return "", common.ErrInvalidInvoiceType
	}
	return t, nil
}

// Profile is a user profile record. Username is assigned at registration and
// read-only; the remaining ten fields are free-form text, all optional.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Zip      string `json:"zip"`
	Bio      string `json:"bio"`
}

// ProfilePayload carries the mutable profile fields for a save call.
// Username is deliberately absent: the backend never accepts it.
type ProfilePayload struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Zip      string `json:"zip"`
	Bio      string `json:"bio"`
}

// Payload extracts the ten mutable fields from p.
func (p Profile) Payload() ProfilePayload {
	return ProfilePayload{
		Email:    p.Email,
		FullName: p.FullName,
		Phone:    p.Phone,
		Company:  p.Company,
		Address:  p.Address,
		City:     p.City,
		State:    p.State,
		Country:  p.Country,
		Zip:      p.Zip,
		Bio:      p.Bio,
	}
}

// UploadRecord describes one past upload. Records are created server-side and
// never mutated by the client.
type UploadRecord struct {
	ID               int64       `json:"id"`
	UploadTime       string      `json:"upload_time"`
	InvoiceType      InvoiceType `json:"invoice_type"`
	OriginalFilename string      `json:"original_filename"`
	ExcelFilename    string      `json:"excel_filename,omitempty"`
	WordFilename     string      `json:"word_filename,omitempty"`
}

// UploadResult holds the download paths returned by a successful upload.
type UploadResult struct {
	ExcelURL string `json:"excel_url"`
	WordURL  string `json:"word_url"`
}

// NotificationType distinguishes success and error notifications.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)

// Notification is an ephemeral user-facing message. ID is timestamp-derived
// and unique; notifications self-destruct after a fixed delay.
type Notification struct {
	ID      int64
	Type    NotificationType
	Message string
}

// HistoryStats aggregates counters over the upload history.
type HistoryStats struct {
	Total   int
	Excel   int
	Word    int
	Printed int
}
