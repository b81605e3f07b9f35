package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"lend-closet-backend/internal/models"
	"lend-closet-backend/internal/store"
)

const maxListingImages = 5

var (
	// ErrTitleRequired is returned when an add-listing form has no title.
	ErrTitleRequired = errors.New("item name is required")
	// ErrImageRequired is returned when an add-listing form has no photo.
	ErrImageRequired = errors.New("at least one photo is required")
	// ErrTooManyImages caps the photo count per listing.
	ErrTooManyImages = errors.New("maximum 5 images")
	// ErrListingNotFound is returned when no listing has the given id.
	ErrListingNotFound = errors.New("listing not found")
)

// AddListingInput is the add-listing form payload. Image references may be
// remote URIs, local file URIs or opaque asset handles; only presence is
// validated.
type AddListingInput struct {
	Title               string   `json:"title"`
	Brand               string   `json:"brand"`
	SizeLabel           string   `json:"size_label"`
	Material            string   `json:"material"`
	Color               string   `json:"color"`
	Occasion            string   `json:"occasion"`
	Description         string   `json:"description"`
	WashingInstructions string   `json:"washing_instructions"`
	Images              []string `json:"images"`
}

// ListingService owns the current user's listings. Deleting a listing also
// purges activity records carrying the same id, the only cross-store
// invariant in the system.
type ListingService struct {
	listings   *store.ListingStore
	activities *store.ActivityStore
	hub        *EventHub
	viewer     string
}

// NewListingService creates a new listing service.
func NewListingService(listings *store.ListingStore, activities *store.ActivityStore, hub *EventHub, viewer string) *ListingService {
	return &ListingService{
		listings:   listings,
		activities: activities,
		hub:        hub,
		viewer:     viewer,
	}
}

// List returns the listings with IsLent recomputed from the activity store.
func (s *ListingService) List() []models.Listing {
	items := s.listings.Listings()
	for i := range items {
		items[i].IsLent = s.isLent(items[i].ID)
	}
	return items
}

// Get returns a single listing with IsLent recomputed.
func (s *ListingService) Get(id string) (models.Listing, error) {
	l, ok := s.listings.Get(id)
	if !ok {
		return models.Listing{}, ErrListingNotFound
	}
	l.IsLent = s.isLent(id)
	return l, nil
}

// Add validates the form and appends a new listing with a
// timestamp-derived id.
func (s *ListingService) Add(input AddListingInput) (models.Listing, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.Listing{}, ErrTitleRequired
	}
	if len(input.Images) == 0 {
		return models.Listing{}, ErrImageRequired
	}
	if len(input.Images) > maxListingImages {
		return models.Listing{}, ErrTooManyImages
	}

	listing := models.Listing{
		ID:                  fmt.Sprintf("listing_%d", time.Now().UnixNano()),
		ImageURL:            input.Images[0],
		Alt:                 title,
		Title:               title,
		Brand:               input.Brand,
		SizeLabel:           input.SizeLabel,
		Material:            input.Material,
		Color:               input.Color,
		Occasion:            input.Occasion,
		Description:         input.Description,
		WashingInstructions: input.WashingInstructions,
	}

	s.listings.Add(listing)
	s.hub.Broadcast(EventListingAdded, listing.ID, listing)
	return listing, nil
}

// Delete removes the listing and cascades into the activity store so the
// item disappears from every bucket.
func (s *ListingService) Delete(id string) error {
	if !s.listings.Remove(id) {
		return ErrListingNotFound
	}
	s.activities.Remove(id)
	s.hub.Broadcast(EventListingRemoved, id, nil)
	return nil
}

// isLent reports whether any current lending record owned by the viewer
// references the listing.
func (s *ListingService) isLent(id string) bool {
	for _, rec := range s.activities.Items() {
		if rec.ID != id || rec.Activity == nil || rec.Owner == nil {
			continue
		}
		if rec.Owner.Name == s.viewer &&
			rec.Activity.Role == models.RoleLending &&
			rec.Activity.Status == models.StatusCurrent {
			return true
		}
	}
	return false
}
