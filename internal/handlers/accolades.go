package handlers

import (
	"net/http"

	"lumakin.dev/internal/services"
)

// AccoladeHandler handles accolade endpoints
type AccoladeHandler struct {
	accoladeService *services.AccoladeService
}

// NewAccoladeHandler creates a new AccoladeHandler
func NewAccoladeHandler(as *services.AccoladeService) *AccoladeHandler {
	return &AccoladeHandler{accoladeService: as}
}

// ListAccolades handles GET /api/accolades?page=N. Pages are zero-based and
// out of range values are clamped.
func (h *AccoladeHandler) ListAccolades(w http.ResponseWriter, r *http.Request) {
	page := parseIntParam(r, "page", 0)
	respondJSON(w, r, http.StatusOK, h.accoladeService.Page(page))
}
