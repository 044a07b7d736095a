package service

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when a generation is attempted without an
// upstream API credential configured. It is checked per request so that a
// misconfigured deployment still serves its health endpoint.
var ErrMissingAPIKey = errors.New("OPENROUTER_API_KEY not found in environment")

// ErrStoreNotConfigured is returned by store operations when no database
// connection was configured at startup.
var ErrStoreNotConfigured = errors.New("persistence store is not configured")

// UpstreamError reports a failed call to the chat-completion endpoint, either
// a transport failure or a non-success status with whatever error body the
// upstream returned.
type UpstreamError struct {
	StatusCode int         // zero when the request never completed
	Body       interface{} // JSON-decoded error body when possible, else raw text
	Err        error       // transport-level cause, if any
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream API request failed: %v", e.Err)
	}
	return fmt.Sprintf("upstream API call failed with status %d: %v", e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ParseError reports that every extraction strategy failed on the model's
// reply. It carries the raw text for diagnostics; the extractor never
// fabricates an empty document instead of failing.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse model response as JSON: %s", e.Raw)
}

// StoreError wraps a persistence backend failure. Callers must not assume a
// partial write succeeded.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
