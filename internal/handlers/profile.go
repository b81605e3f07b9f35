package handlers

import (
	"net/http"

	"lend-closet-backend/internal/middleware"
	"lend-closet-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// ProfileHandler handles profile HTTP requests
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile handles GET /api/v1/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.GetViewer(r.Context())
	profile := h.profileService.Profile()

	log.Debug().Str("viewer", viewer.Name).Msg("Profile requested")
	respondJSON(w, profile, http.StatusOK)
}
