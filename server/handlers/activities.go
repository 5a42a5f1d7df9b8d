package handlers

import (
	"net/http"
)

// ActivitiesHandler handles requests for the full activity catalog.
type ActivitiesHandler struct {
	catalog CatalogProvider
}

// NewActivitiesHandler creates a new ActivitiesHandler.
func NewActivitiesHandler(catalog CatalogProvider) *ActivitiesHandler {
	return &ActivitiesHandler{
		catalog: catalog,
	}
}

// ServeHTTP implements http.Handler.
func (h *ActivitiesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.List())
}
