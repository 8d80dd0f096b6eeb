package model

import "errors"

// The error taxonomy of the pipeline. Everything a step can fail with
// wraps one of these, so callers can classify with errors.Is.
var (
	// ErrInvalidURL means the submitted URL has no recognizable video
	// identifier. User input error, no network call was made.
	ErrInvalidURL = errors.New("not a valid youtube video url")

	// ErrVideoNotFound means the catalog returned zero results for a
	// well-formed identifier.
	ErrVideoNotFound = errors.New("video not found")

	// ErrTransport covers failed or non-success metadata requests.
	ErrTransport = errors.New("video metadata request failed")

	// ErrGeneration covers any failure of the generative service.
	ErrGeneration = errors.New("text generation failed")

	// ErrBusy is returned when a submission or question arrives while
	// another one is still in flight for the same session.
	ErrBusy = errors.New("another request is in flight for this session")

	// ErrNoSummary is returned when a question is asked before a
	// summary exists.
	ErrNoSummary = errors.New("no summary available yet")

	// ErrSuperseded is returned to a caller whose result was discarded
	// because the session was reset while the call was in flight.
	ErrSuperseded = errors.New("session was reset while the request was in flight")

	ErrSessionNotFound = errors.New("session not found")
)
