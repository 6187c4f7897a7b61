package lastfm

import (
	"errors"
	"fmt"
)

// Error taxonomy. The client never retries on its own and never
// distinguishes transient from permanent failures; callers re-invoke the
// same fetch if they want another attempt.
var (
	// ErrNetwork covers transport-level failures: connection errors and
	// non-success HTTP status codes.
	ErrNetwork = errors.New("network failure")
	// ErrUpstream covers success transport responses whose body is an
	// upstream error payload or undecodable.
	ErrUpstream = errors.New("upstream rejected request")
	// ErrValidation covers caller-supplied arguments failing a
	// precondition.
	ErrValidation = errors.New("invalid arguments")
)

// APIError is an error payload Last.fm delivers inside a 200 response.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("last.fm API error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("last.fm API error %d", e.Code)
}

func (e *APIError) Unwrap() error {
	return ErrUpstream
}
