package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"lend-closet-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// ActivityHandler handles activity HTTP requests
type ActivityHandler struct {
	activityService *services.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// GetBuckets handles GET /api/v1/activity
func (h *ActivityHandler) GetBuckets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.activityService.Buckets(), http.StatusOK)
}

// ApproveRequest is the optional body for the detailed approve variant
type ApproveRequest struct {
	PickupLocation      string `json:"pickup_location"`
	ReturnDate          string `json:"return_date"`
	WashingInstructions string `json:"washing_instructions"`
}

// Approve handles POST /api/v1/activity/{item_id}/approve
func (h *ActivityHandler) Approve(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	if itemID == "" {
		respondError(w, "item_id is required", http.StatusBadRequest)
		return
	}

	// An empty body selects the simple variant
	var details *services.ApproveDetails
	var req ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if !errors.Is(err, io.EOF) {
			respondError(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	} else if req.PickupLocation != "" || req.ReturnDate != "" || req.WashingInstructions != "" {
		details = &services.ApproveDetails{
			PickupLocation:      req.PickupLocation,
			ReturnDate:          req.ReturnDate,
			WashingInstructions: req.WashingInstructions,
		}
	}

	rec, err := h.activityService.Approve(itemID, details)
	if err != nil {
		log.Error().Err(err).Str("item_id", itemID).Msg("Failed to approve request")
		respondError(w, err.Error(), approveStatusCode(err))
		return
	}

	log.Info().Str("item_id", itemID).Bool("detailed", details != nil).Msg("Request approved")
	respondJSON(w, rec, http.StatusOK)
}

// Deny handles POST /api/v1/activity/{item_id}/deny
func (h *ActivityHandler) Deny(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	if itemID == "" {
		respondError(w, "item_id is required", http.StatusBadRequest)
		return
	}

	applied, err := h.activityService.Deny(itemID)
	if err != nil {
		log.Error().Err(err).Str("item_id", itemID).Msg("Failed to deny request")
		respondError(w, err.Error(), approveStatusCode(err))
		return
	}

	if !applied {
		respondJSON(w, map[string]string{"status": "armed"}, http.StatusOK)
		return
	}

	log.Info().Str("item_id", itemID).Msg("Request denied")
	respondJSON(w, map[string]string{"status": "denied"}, http.StatusOK)
}

// Return handles POST /api/v1/activity/{item_id}/return
func (h *ActivityHandler) Return(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	if itemID == "" {
		respondError(w, "item_id is required", http.StatusBadRequest)
		return
	}

	if err := h.activityService.Return(itemID); err != nil {
		log.Error().Err(err).Str("item_id", itemID).Msg("Failed to mark item returned")
		respondError(w, err.Error(), approveStatusCode(err))
		return
	}

	log.Info().Str("item_id", itemID).Msg("Item returned")
	w.WriteHeader(http.StatusNoContent)
}

func approveStatusCode(err error) int {
	switch {
	case errors.Is(err, services.ErrActivityNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNoRelationship), errors.Is(err, services.ErrNotRequested):
		return http.StatusConflict
	case errors.Is(err, services.ErrReturnDateRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
