package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"lend-closet-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// ListingHandler handles listing HTTP requests
type ListingHandler struct {
	listingService *services.ListingService
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listingService *services.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// ListListings handles GET /api/v1/listings
func (h *ListingHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	listings := h.listingService.List()
	response := map[string]interface{}{
		"listings": listings,
		"total":    len(listings),
	}
	respondJSON(w, response, http.StatusOK)
}

// GetListing handles GET /api/v1/listings/{listing_id}
func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "listing_id")
	if listingID == "" {
		respondError(w, "listing_id is required", http.StatusBadRequest)
		return
	}

	listing, err := h.listingService.Get(listingID)
	if err != nil {
		if errors.Is(err, services.ErrListingNotFound) {
			respondError(w, err.Error(), http.StatusNotFound)
			return
		}
		respondError(w, "Failed to get listing", http.StatusInternalServerError)
		return
	}

	respondJSON(w, listing, http.StatusOK)
}

// AddListing handles POST /api/v1/listings
func (h *ListingHandler) AddListing(w http.ResponseWriter, r *http.Request) {
	var input services.AddListingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	listing, err := h.listingService.Add(input)
	if err != nil {
		log.Error().Err(err).Str("title", input.Title).Msg("Failed to add listing")

		statusCode := http.StatusInternalServerError
		if errors.Is(err, services.ErrTitleRequired) ||
			errors.Is(err, services.ErrImageRequired) ||
			errors.Is(err, services.ErrTooManyImages) {
			statusCode = http.StatusBadRequest
		}
		respondError(w, err.Error(), statusCode)
		return
	}

	log.Info().Str("listing_id", listing.ID).Str("title", listing.Title).Msg("Listing added")
	respondJSON(w, listing, http.StatusCreated)
}

// DeleteListing handles DELETE /api/v1/listings/{listing_id}
func (h *ListingHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "listing_id")
	if listingID == "" {
		respondError(w, "listing_id is required", http.StatusBadRequest)
		return
	}

	if err := h.listingService.Delete(listingID); err != nil {
		log.Error().Err(err).Str("listing_id", listingID).Msg("Failed to delete listing")

		statusCode := http.StatusInternalServerError
		if errors.Is(err, services.ErrListingNotFound) {
			statusCode = http.StatusNotFound
		}
		respondError(w, err.Error(), statusCode)
		return
	}

	log.Info().Str("listing_id", listingID).Msg("Listing deleted")
	w.WriteHeader(http.StatusNoContent)
}
