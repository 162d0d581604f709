// internal/handlers/components.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"github.com/labsuite/labstock/internal/core/domain"
	"github.com/labsuite/labstock/internal/core/store"
	"github.com/labsuite/labstock/internal/tableview"
)

// ComponentHandler serves the component list screen and proxies CRUD
// operations through the collection store.
type ComponentHandler struct {
	store  *store.CollectionStore
	logger *slog.Logger
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(s *store.CollectionStore, logger *slog.Logger) *ComponentHandler {
	return &ComponentHandler{
		store:  s,
		logger: logger.With(slog.String("handler", "components")),
	}
}

// listTemplate renders one page of components as a plain table. The
// stylesheet turns data-label-tagged cells into stacked cards on narrow
// viewports.
var listTemplate = template.Must(template.New("components").Parse(`<div class="table-scroll" id="components-scroll">
<table id="components-table">
<thead><tr><th>Name</th><th>Part Number</th><th>Category</th><th>Quantity</th><th>Unit Price</th><th>Location</th><th>Status</th></tr></thead>
<tbody>
{{range .}}<tr><td>{{.Name}}</td><td>{{.PartNumber}}</td><td>{{.Category}}</td><td>{{.Quantity}}</td><td>{{.UnitPrice.StringFixed 2}}</td><td>{{.Location}}</td><td>{{.StockStatus.DisplayName}}</td></tr>
{{end}}</tbody>
</table>
</div>
`))

// ListComponents handles GET /components
func (h *ComponentHandler) ListComponents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	criteria, page := h.parseListQuery(r)
	if err := h.store.FetchPage(ctx, criteria, page); err != nil {
		h.respondFetchError(w, r, err)
		return
	}

	snap := h.store.Snapshot()
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"components":  snap.Components,
		"currentPage": snap.Pagination.Page,
		"totalPages":  snap.Pagination.TotalPages,
		"total":       snap.Pagination.TotalCount,
	})
}

// ListTable handles GET /components/table: the server-rendered list
// screen, annotated for narrow viewports before it leaves the gateway.
func (h *ComponentHandler) ListTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	criteria, page := h.parseListQuery(r)
	if err := h.store.FetchPage(ctx, criteria, page); err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	snap := h.store.Snapshot()

	var buf bytes.Buffer
	if err := listTemplate.Execute(&buf, snap.Components); err != nil {
		h.logger.ErrorContext(ctx, "failed to render component table",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to render table")
		return
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to parse rendered table",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to render table")
		return
	}
	// Every response is a fresh document, so it gets its own annotator;
	// the processed set tracks tables within one rendered screen.
	tableview.NewAnnotator().Annotate(doc.Find("table").First())

	html, err := doc.Find("body").Html()
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to render table")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, html)
}

// GetComponent handles GET /components/{id}
func (h *ComponentHandler) GetComponent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	comp, err := h.store.FetchOne(ctx, id)
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, comp)
}

// CreateComponent handles POST /components
func (h *ComponentHandler) CreateComponent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var comp domain.Component
	if err := json.NewDecoder(r.Body).Decode(&comp); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.store.Create(ctx, &comp)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, created)
}

// UpdateComponent handles PUT /components/{id}
func (h *ComponentHandler) UpdateComponent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var comp domain.Component
	if err := json.NewDecoder(r.Body).Decode(&comp); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.store.Update(ctx, id, &comp)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, updated)
}

// UpdateQuantity handles PUT /components/{id}/quantity
func (h *ComponentHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var q domain.QuantityUpdate
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.store.UpdateQuantity(ctx, id, q)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, updated)
}

// DeleteComponent handles DELETE /components/{id}
func (h *ComponentHandler) DeleteComponent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if err := h.store.Delete(ctx, id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Component deleted successfully",
		"id":      id,
	})
}

// parseListQuery parses filter criteria and pagination from the query
// string. Absent parameters stay unset.
func (h *ComponentHandler) parseListQuery(r *http.Request) (domain.ListCriteria, domain.Pagination) {
	q := r.URL.Query()

	criteria := domain.ListCriteria{
		Search:       q.Get("search"),
		Category:     q.Get("category"),
		Location:     q.Get("location"),
		StockStatus:  q.Get("stock_status"),
		Manufacturer: q.Get("manufacturer"),
		Supplier:     q.Get("supplier"),
		DateAdded:    domain.DateBucket(q.Get("date_added")),
		SortBy:       q.Get("sort"),
		SortOrder:    q.Get("order"),
	}
	if tags, ok := q["tags"]; ok {
		criteria.Tags = tags
	}
	if v := q.Get("min_quantity"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			criteria.MinQuantity = &n
		}
	}
	if v := q.Get("max_quantity"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			criteria.MaxQuantity = &n
		}
	}
	if v := q.Get("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.MinPrice = &f
		}
	}
	if v := q.Get("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.MaxPrice = &f
		}
	}
	if v := q.Get("has_datasheet"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			criteria.HasDatasheet = &b
		}
	}

	page := domain.DefaultPagination()
	if v := q.Get("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			page.Page = p
		}
	}
	if v := q.Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil && l > 0 {
			if l > 100 {
				page.Limit = 100
			} else {
				page.Limit = l
			}
		}
	}

	return criteria, page
}

// Helper methods

func (h *ComponentHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *ComponentHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
