// internal/handlers/health.go
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/labsuite/labstock/internal/core/ports"
)

// HealthHandler reports gateway health and downstream reachability.
type HealthHandler struct {
	cache   ports.CacheRepository
	version string
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cache ports.CacheRepository, version string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		cache:   cache,
		version: version,
		logger:  logger.With(slog.String("handler", "health")),
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	checks := map[string]string{}

	if err := h.cache.Ping(ctx); err != nil {
		checks["redis"] = "unreachable: " + err.Error()
		status = "degraded"
	} else {
		checks["redis"] = "ok"
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    status,
		"version":   h.version,
		"checks":    checks,
		"timestamp": time.Now().UTC(),
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
}
