// internal/adapters/rest/errors.go
package rest

import (
	"errors"
	"fmt"

	"github.com/labsuite/labstock/internal/core/domain"
)

// NetworkError marks a request that never reached or never returned from
// the remote service. The wrapped error is the transport failure.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServiceError is a structured rejection from the backend carrying a
// human-readable message.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("service error (status %d)", e.StatusCode)
}

// Is lets a 404 ServiceError satisfy errors.Is(err, domain.ErrNotFound).
func (e *ServiceError) Is(target error) bool {
	return target == domain.ErrNotFound && e.StatusCode == 404
}

// IsNetwork reports whether err is a transport-level failure.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// ServiceMessage extracts the backend's message when present. The empty
// string means the caller should fall back to its own generic message.
func ServiceMessage(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}
