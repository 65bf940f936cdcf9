// Package api contains the transport layer for talking to the EXLPRO
// invoice-extraction backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): Register,
//     Login, GetProfile/SaveProfile, GetHistory, Upload, Download.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) that attaches
//     the bearer token to authenticated calls, sends uploads as multipart
//     form data, and maps failures to sentinel errors.
//
// # Error Handling
//
// Two failure sources exist and callers must be able to tell them apart:
//
//   - transport failures (request never completed) wrap ErrUnavailable;
//   - backend-reported failures (response body carries an "error" field)
//     are returned as *BackendError holding the literal server message.
//
// Match both with errors.Is / errors.As.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation. No request timeout is applied;
// a hung call blocks only its caller.
package api
