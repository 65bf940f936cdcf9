// Package cli provides the interactive EXLPRO invoice dashboard client.
//
// It wires configuration, the local settings store, the backend API client,
// and an interactive REPL around the dashboard state machine. Typical flow:
// restore a saved session, then execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout against the backend session endpoints
//   - View and edit the billing profile
//   - Upload invoice files and follow extraction progress
//   - Browse, search, and summarize the upload history
//   - Download generated Excel and Word results
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
