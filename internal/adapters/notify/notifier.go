// internal/adapters/notify/notifier.go
package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/labsuite/labstock/internal/core/ports"
)

// LogNotifier is the default Notifier adapter: outcomes are logged and
// kept in a small ring so UI surfaces can poll recent toasts. Delivery
// beyond that is out of scope here.
type LogNotifier struct {
	logger *slog.Logger

	mu     sync.Mutex
	recent []Toast
	limit  int
}

// Toast is one transient success/error signal.
type Toast struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

var _ ports.Notifier = (*LogNotifier)(nil)

// New creates a notifier keeping the last limit toasts.
func New(logger *slog.Logger, limit int) *LogNotifier {
	if limit <= 0 {
		limit = 20
	}
	return &LogNotifier{
		logger: logger.With(slog.String("component", "notifier")),
		limit:  limit,
	}
}

// Success records a success toast.
func (n *LogNotifier) Success(ctx context.Context, message string) {
	n.logger.InfoContext(ctx, "notification", slog.String("level", "success"), slog.String("message", message))
	n.push(Toast{Level: "success", Message: message})
}

// Error records an error toast.
func (n *LogNotifier) Error(ctx context.Context, message string) {
	n.logger.WarnContext(ctx, "notification", slog.String("level", "error"), slog.String("message", message))
	n.push(Toast{Level: "error", Message: message})
}

// Recent returns the retained toasts, oldest first.
func (n *LogNotifier) Recent() []Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Toast, len(n.recent))
	copy(out, n.recent)
	return out
}

func (n *LogNotifier) push(t Toast) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.recent = append(n.recent, t)
	if len(n.recent) > n.limit {
		n.recent = n.recent[len(n.recent)-n.limit:]
	}
}
