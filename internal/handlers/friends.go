package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"lend-closet-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// FriendHandler handles friend HTTP requests
type FriendHandler struct {
	friendService *services.FriendService
}

// NewFriendHandler creates a new friend handler
func NewFriendHandler(friendService *services.FriendService) *FriendHandler {
	return &FriendHandler{friendService: friendService}
}

// ListFriends handles GET /api/v1/friends
func (h *FriendHandler) ListFriends(w http.ResponseWriter, r *http.Request) {
	friends := h.friendService.Friends()
	response := map[string]interface{}{
		"friends": friends,
		"total":   len(friends),
	}
	respondJSON(w, response, http.StatusOK)
}

// LookupRequest represents the request body for a phone lookup
type LookupRequest struct {
	Phone string `json:"phone"`
}

// LookupFriend handles POST /api/v1/friends/lookup
func (h *FriendHandler) LookupFriend(w http.ResponseWriter, r *http.Request) {
	var req LookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Phone == "" {
		respondError(w, "phone is required", http.StatusBadRequest)
		return
	}

	user, err := h.friendService.Lookup(req.Phone)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, services.ErrUserNotFound) {
			statusCode = http.StatusNotFound
		} else if errors.Is(err, services.ErrPhoneTooShort) {
			statusCode = http.StatusBadRequest
		}
		respondError(w, err.Error(), statusCode)
		return
	}

	respondJSON(w, user, http.StatusOK)
}

// AddFriendRequest represents the request body for adding a friend
type AddFriendRequest struct {
	UserID string `json:"user_id"`
}

// AddFriend handles POST /api/v1/friends
func (h *FriendHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	var req AddFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		respondError(w, "user_id is required", http.StatusBadRequest)
		return
	}

	user, err := h.friendService.AddFriend(req.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", req.UserID).Msg("Failed to add friend")

		statusCode := http.StatusInternalServerError
		if errors.Is(err, services.ErrUserNotFound) {
			statusCode = http.StatusNotFound
		}
		respondError(w, err.Error(), statusCode)
		return
	}

	log.Info().Str("user_id", user.ID).Str("name", user.Name).Msg("Friend added")
	respondJSON(w, user, http.StatusOK)
}

// ContactRequest represents the request body for contacting a friend
type ContactRequest struct {
	Method string `json:"method"`
}

// ContactFriend handles POST /api/v1/friends/{user_id}/contact
func (h *FriendHandler) ContactFriend(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		respondError(w, "user_id is required", http.StatusBadRequest)
		return
	}

	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Method == "" {
		req.Method = "sms"
	}

	url, err := h.friendService.Contact(userID, req.Method)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("method", req.Method).Msg("Failed to contact friend")

		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, services.ErrNotFriend), errors.Is(err, services.ErrUnknownMethod):
			statusCode = http.StatusBadRequest
		case errors.Is(err, services.ErrAppUnavailable):
			statusCode = http.StatusConflict
		}
		respondError(w, err.Error(), statusCode)
		return
	}

	respondJSON(w, map[string]string{"url": url}, http.StatusOK)
}
