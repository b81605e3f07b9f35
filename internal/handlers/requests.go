package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"lend-closet-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// RequestHandler handles borrow-request HTTP requests
type RequestHandler struct {
	requestService *services.RequestService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestService *services.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// CreateRequestBody represents the request body for creating a borrow request
type CreateRequestBody struct {
	ProductID string `json:"product_id"`
}

// ListRequests handles GET /api/v1/requests
func (h *RequestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests := h.requestService.List()
	response := map[string]interface{}{
		"requests": requests,
		"total":    len(requests),
	}
	respondJSON(w, response, http.StatusOK)
}

// CreateRequest handles POST /api/v1/requests
func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var body CreateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.ProductID == "" {
		respondError(w, "product_id is required", http.StatusBadRequest)
		return
	}

	rec, created, err := h.requestService.Create(body.ProductID)
	if err != nil {
		log.Error().Err(err).Str("product_id", body.ProductID).Msg("Failed to create request")

		statusCode := http.StatusInternalServerError
		if errors.Is(err, services.ErrProductNotFound) {
			statusCode = http.StatusNotFound
		}
		respondError(w, err.Error(), statusCode)
		return
	}

	statusCode := http.StatusOK
	if created {
		statusCode = http.StatusCreated
		log.Info().Str("product_id", body.ProductID).Msg("Borrow request created")
	}
	respondJSON(w, rec, statusCode)
}

// CancelRequest handles DELETE /api/v1/requests/{product_id}. Cancellation
// is gated behind an explicit confirm flag, mirroring the confirmation
// prompt in the client.
func (h *RequestHandler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, "product_id is required", http.StatusBadRequest)
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		respondError(w, "confirmation required", http.StatusBadRequest)
		return
	}

	if err := h.requestService.Cancel(productID); err != nil {
		log.Error().Err(err).Str("product_id", productID).Msg("Failed to cancel request")

		statusCode := http.StatusInternalServerError
		if errors.Is(err, services.ErrRequestNotFound) {
			statusCode = http.StatusNotFound
		}
		respondError(w, err.Error(), statusCode)
		return
	}

	log.Info().Str("product_id", productID).Msg("Borrow request cancelled")
	w.WriteHeader(http.StatusNoContent)
}

// MarkApproved handles POST /api/v1/requests/{product_id}/approved, the
// borrower-side half of an approval.
func (h *RequestHandler) MarkApproved(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, "product_id is required", http.StatusBadRequest)
		return
	}

	if err := h.requestService.MarkApproved(productID); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, services.ErrRequestNotFound) {
			statusCode = http.StatusNotFound
		}
		respondError(w, err.Error(), statusCode)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
