package domain

import "fmt"

// APIError is a structured error response from the Bot API.
// Match with errors.As to inspect the error code or flood-control parameters.
type APIError struct {
	// Code is the HTTP-style error_code from the response body.
	Code int

	// Description is the human-readable description from the response body.
	Description string

	// RetryAfter is the flood-control wait in seconds, zero when absent.
	RetryAfter int
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("api error %d: %s (retry after %ds)", e.Code, e.Description, e.RetryAfter)
	}
	return fmt.Sprintf("api error %d: %s", e.Code, e.Description)
}

// Unauthorized reports whether the error is an invalid-credential rejection.
func (e *APIError) Unauthorized() bool {
	return e.Code == 401 && e.Description == "Unauthorized"
}

// RateLimited reports whether the error carries a flood-control wait.
func (e *APIError) RateLimited() bool {
	return e.RetryAfter > 0
}
