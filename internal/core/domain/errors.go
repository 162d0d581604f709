// internal/core/domain/errors.go
package domain

import "errors"

// Error taxonomy shared by the store and the remote service adapter.
var (
	// ErrValidation marks client-side required-field failures. These are
	// resolved before any request is sent.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an entity id that does not resolve server-side.
	ErrNotFound = errors.New("not found")
)
