package handlers

import (
	"net/http"

	"lumakin.dev/internal/services"
)

// ProfileHandler serves the owner's details and affiliations
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(ps *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: ps}
}

// GetProfile handles GET /api/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.profileService.Profile())
}

// ListAffiliations handles GET /api/affiliations
func (h *ProfileHandler) ListAffiliations(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.profileService.Affiliations())
}
