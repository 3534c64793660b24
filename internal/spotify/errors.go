package spotify

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/lofibeats/spotlink/internal/shared"
)

// RequestError is returned when any Spotify endpoint answers with a non-2xx
// status. It is never retried or downgraded; callers see it directly.
type RequestError struct {
	Status int
	Reason string
}

func (e *RequestError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("spotify: request failed with status %d", e.Status)
	}
	return fmt.Sprintf("spotify: request failed with status %d: %s", e.Status, e.Reason)
}

// Unwrap lets callers match any request failure with [shared.ErrAPIRequest].
func (e *RequestError) Unwrap() error {
	return shared.ErrAPIRequest
}

func newRequestError(resp *http.Response) *RequestError {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprintf("%d", resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return &RequestError{Status: resp.StatusCode, Reason: reason}
}
