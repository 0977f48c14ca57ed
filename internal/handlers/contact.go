package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"lumakin.dev/internal/contact"
	"lumakin.dev/internal/middleware"
)

// ContactHandler accepts contact form submissions as JSON
type ContactHandler struct {
	forms   *contact.Forms
	proxies *middleware.Proxies
}

// NewContactHandler creates a new ContactHandler. Visitors are told apart by
// the client address proxies resolve.
func NewContactHandler(forms *contact.Forms, proxies *middleware.Proxies) *ContactHandler {
	return &ContactHandler{forms: forms, proxies: proxies}
}

// Submit handles POST /api/contact. The response body is the settled status;
// the code reflects the failure kind.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var fields contact.Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	form := h.forms.Get(h.proxies.ClientIP(r))
	st, err := form.Submit(r.Context(), fields)
	if errors.Is(err, contact.ErrSubmitInProgress) {
		respondJSON(w, r, HTTPStatus(err), contact.Status{
			State:   contact.Submitting,
			Message: "Your previous message is still being sent.",
		})
		return
	}

	respondJSON(w, r, statusForContact(st), st)
}
