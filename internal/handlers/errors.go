// internal/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/labsuite/labstock/internal/adapters/rest"
	"github.com/labsuite/labstock/internal/core/domain"
)

// respondFetchError maps store read failures onto gateway status codes:
// not-found stays 404, transport failures become 502, everything else is
// relayed with the backend's own message when it sent one.
func (h *ComponentHandler) respondFetchError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "Component not found")
	case errors.Is(err, domain.ErrValidation):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case rest.IsNetwork(err):
		h.respondError(w, http.StatusBadGateway, "Inventory service unreachable")
	default:
		if msg := rest.ServiceMessage(err); msg != "" {
			h.respondError(w, http.StatusBadGateway, msg)
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to load components")
	}
}

// respondStoreError maps mutation failures. Validation failed before any
// request was issued, so it is the caller's 400.
func (h *ComponentHandler) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "Component not found")
	case rest.IsNetwork(err):
		h.respondError(w, http.StatusBadGateway, "Inventory service unreachable")
	default:
		if msg := rest.ServiceMessage(err); msg != "" {
			h.respondError(w, http.StatusBadGateway, msg)
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Operation failed")
	}
}
