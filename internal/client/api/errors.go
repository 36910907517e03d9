package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable signals that the request never reached the backend. The
// underlying transport detail is logged, not surfaced, so raw socket errors
// never leak into user-facing messages.
var ErrUnavailable = errors.New("connection error")

// APIError carries a non-2xx backend response. Message is the response body
// text verbatim; the backend is trusted to produce human-readable text and
// the client performs no reinterpretation.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return e.Message
}
