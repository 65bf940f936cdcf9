// Package dashboard holds the client-side application state and the named
// operations that mutate it: session lifecycle, profile sync with an explicit
// view/edit state machine, the upload workflow, the history list, and the
// notification center.
//
// # State model
//
// A single Dashboard value owns all mutable view state. Subordinate views
// (the REPL commands) never assign fields directly; every change goes through
// a named operation so invariants hold in one place.
//
// # Concurrency
//
// One goroutine (the REPL) drives operations. The only background activity is
// notification-expiry timers and the simulated upload progress ticker; a
// mutex guards the shared state they touch. The upload busy flag is the sole
// submission guard: overlapping profile or history fetches are not fenced and
// the last response to resolve wins.
//
// # Error surfacing
//
// Operations return errors for callers and tests, and additionally raise a
// notification: the backend's literal message for reported failures, a
// generic fallback for transport failures. No operation leaves state
// partially applied.
package dashboard
