// Package common defines shared constants and sentinel errors used across
// the invoice dashboard client. Callers should use errors.Is to match them.
package common

import "errors"

var (
	// ErrNotLoggedIn is returned by operations that require a bearer token
	// when no session is active.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrNoFileSelected is returned when an upload is submitted without a file.
	ErrNoFileSelected = errors.New("no file selected")

	// ErrUploadInProgress is returned when a second upload is attempted while
	// one is already in flight.
	ErrUploadInProgress = errors.New("upload already in progress")

	// ErrUnsupportedFileType is returned for files that are neither PDF nor image.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrInvalidInvoiceType is returned for invoice types other than
	// "printed" or "handwritten".
	ErrInvalidInvoiceType = errors.New("invalid invoice type")
)
