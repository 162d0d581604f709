// internal/core/ports/notifier.go
package ports

import "context"

// Notifier receives the transient success/error signals the store emits
// after each operation. Delivery (toasts, email, nothing) is up to the
// adapter; the store only reports outcomes.
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}
