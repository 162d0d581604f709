// internal/handlers/export.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labsuite/labstock/internal/core/domain"
	"github.com/labsuite/labstock/internal/core/ports"
	"github.com/labsuite/labstock/internal/export"
)

// ExportHandler streams the filtered component collection as a
// spreadsheet or CSV download.
type ExportHandler struct {
	service ports.ComponentService
	maxRows int
	logger  *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(service ports.ComponentService, maxRows int, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		maxRows: maxRows,
		logger:  logger.With(slog.String("handler", "export")),
	}
}

// Export handles GET /export. The format query parameter selects xlsx
// (default) or csv. Filters mirror the list screen's parameters.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	criteria := parseExportCriteria(r)
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}

	h.logger.InfoContext(ctx, "starting export",
		slog.String("format", format))

	components, err := h.collect(r, criteria)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to collect components for export",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusBadGateway, "Failed to retrieve data")
		return
	}

	var data []byte
	var contentType, extension string
	switch format {
	case "csv":
		data, err = export.CSV(components)
		contentType = "text/csv"
		extension = "csv"
	default:
		data, err = export.Excel(components)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		extension = "xlsx"
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate export file",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to generate export")
		return
	}

	filename := fmt.Sprintf("components_export_%s.%s", time.Now().Format("20060102_150405"), extension)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(ctx, "failed to write export response",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "export completed",
		slog.Int("rows", len(components)),
		slog.String("filename", filename))
}

// collect pages through the remote collection up to maxRows.
func (h *ExportHandler) collect(r *http.Request, criteria domain.ListCriteria) ([]*domain.Component, error) {
	ctx := r.Context()

	var components []*domain.Component
	page := domain.Pagination{Page: 1, Limit: 100}
	for {
		result, err := h.service.List(ctx, criteria, page)
		if err != nil {
			return nil, err
		}
		components = append(components, result.Components...)
		if len(components) >= h.maxRows {
			components = components[:h.maxRows]
			break
		}
		if page.Page >= result.TotalPages || len(result.Components) == 0 {
			break
		}
		page.Page++
	}
	return components, nil
}

func parseExportCriteria(r *http.Request) domain.ListCriteria {
	q := r.URL.Query()
	return domain.ListCriteria{
		Search:       q.Get("search"),
		Category:     q.Get("category"),
		Location:     q.Get("location"),
		StockStatus:  q.Get("stock_status"),
		Manufacturer: q.Get("manufacturer"),
		Supplier:     q.Get("supplier"),
	}
}

func (h *ExportHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
