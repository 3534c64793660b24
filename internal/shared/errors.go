package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// API and payload errors
	ErrAPIRequest       = fmt.Errorf("API request failed")
	ErrMalformedPayload = fmt.Errorf("malformed API payload")
	ErrNoTracks         = fmt.Errorf("no tracks found")
	ErrNoNodes          = fmt.Errorf("no connected nodes available")

	// Input validation errors
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
