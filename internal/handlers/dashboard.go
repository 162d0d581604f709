// internal/handlers/dashboard.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/labsuite/labstock/internal/core/services"
)

// DashboardHandler serves the aggregated dashboard figures and lookup
// lists.
type DashboardHandler struct {
	dashboard *services.DashboardService
	logger    *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard *services.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		logger:    logger.With(slog.String("handler", "dashboard")),
	}
}

// Stats handles GET /dashboard/stats
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.dashboard.Stats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load stats",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusBadGateway, "Failed to load statistics")
		return
	}
	h.respondJSON(w, http.StatusOK, stats)
}

// LowStock handles GET /dashboard/low-stock
func (h *DashboardHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	components, err := h.dashboard.LowStock(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load low-stock components",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusBadGateway, "Failed to load low-stock components")
		return
	}
	h.respondJSON(w, http.StatusOK, components)
}

// Categories handles GET /lookups/categories
func (h *DashboardHandler) Categories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.dashboard.Categories(ctx)
	if err != nil {
		h.respondError(w, http.StatusBadGateway, "Failed to load categories")
		return
	}
	h.respondJSON(w, http.StatusOK, categories)
}

// Locations handles GET /lookups/locations
func (h *DashboardHandler) Locations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	locations, err := h.dashboard.Locations(ctx)
	if err != nil {
		h.respondError(w, http.StatusBadGateway, "Failed to load locations")
		return
	}
	h.respondJSON(w, http.StatusOK, locations)
}

func (h *DashboardHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *DashboardHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
