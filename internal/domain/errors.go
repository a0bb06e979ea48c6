package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for gateway operations.
var (
	// ErrServiceUnreachable indicates a transport-level failure talking to
	// the document service (DNS, connect, timeout). The wrapped cause
	// carries the detail.
	ErrServiceUnreachable = errors.New("document service unreachable")

	// ErrNotFound indicates the addressed document, collection, or bucket
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidationRejected indicates the service rejected a write because
	// the payload violates the collection schema.
	ErrValidationRejected = errors.New("document rejected by collection schema")

	// ErrInvalidCredentials indicates the auth service rejected an
	// email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ServiceError is a non-2xx response from the document service. Body holds
// the raw response body for diagnostics; it never contains the API key.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("document service returned status %d: %s", e.StatusCode, e.Body)
}

// Is maps well-known statuses onto the sentinel errors so callers can use
// errors.Is without inspecting status codes.
func (e *ServiceError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == 404
	case ErrValidationRejected:
		return e.StatusCode == 400
	case ErrInvalidCredentials:
		return e.StatusCode == 401
	}
	return false
}
