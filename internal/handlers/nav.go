package handlers

import (
	"encoding/json"
	"net/http"

	"lumakin.dev/internal/shell"
)

// NavHandler resolves the active navigation entry for a scroll position
type NavHandler struct{}

// NewNavHandler creates a new NavHandler
func NewNavHandler() *NavHandler {
	return &NavHandler{}
}

type navRequest struct {
	ScrollY int `json:"scroll_y"`
	// Active is the entry active before this scroll event; it is kept when
	// no section matches.
	Active   string          `json:"active"`
	Sections []shell.Section `json:"sections"`
}

// Active handles POST /api/nav/active
func (h *NavHandler) Active(w http.ResponseWriter, r *http.Request) {
	var req navRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	tracker := shell.NewTracker()
	defer tracker.Close()
	tracker.Register(req.Sections...)
	if req.Active != "" {
		tracker.SetActive(req.Active)
	}

	respondJSON(w, r, http.StatusOK, tracker.Update(req.ScrollY))
}
