package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Authentication errors
	ErrAuthFailed = fmt.Errorf("authentication failed")

	// API and transport errors
	ErrNetwork    = fmt.Errorf("network error")
	ErrAPIRequest = fmt.Errorf("API request failed")
	ErrNotFound   = fmt.Errorf("resource not found")

	// Input validation errors
	ErrValidation = fmt.Errorf("invalid input")
	ErrInvalidURL = fmt.Errorf("invalid playlist URL")
)

// APIError carries the remote status and message of a rejected request verbatim.
// Unwraps to [ErrAPIRequest] so callers can branch on the error class.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("spotify API error: status %d", e.Status)
	}
	return fmt.Sprintf("spotify API error: status %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return ErrAPIRequest
}
