package handler

import (
	"errors"
	"net/http"

	"game-night-go/internal/catalog/bgg"
)

func (h *Handlers) SearchCatalog(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results, err := h.Catalog.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, bgg.ErrQueryRequired) {
			writeError(w, http.StatusBadRequest, "invalid_request", "q is required")
			return
		}
		h.log.InternalError("catalog.search: search failed", err, "query", query)
		writeError(w, http.StatusBadGateway, "catalog_unavailable", "catalog lookup failed")
		return
	}

	if results == nil {
		results = []bgg.CatalogGame{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}
