package store

import (
	"sync"

	"lend-closet-backend/internal/models"
)

// ListingStore holds the items the current user has listed for lending.
type ListingStore struct {
	mu    sync.RWMutex
	items []models.Listing
}

// NewListingStore creates a listing store seeded with the given listings.
func NewListingStore(initial []models.Listing) *ListingStore {
	s := &ListingStore{}
	s.Reset(initial)
	return s
}

// Reset replaces the store contents with a fresh copy of the fixture listings.
func (s *ListingStore) Reset(items []models.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]models.Listing, len(items))
	copy(s.items, items)
}

// Listings returns a snapshot of all listings in insertion order.
func (s *ListingStore) Listings() []models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Listing, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the listing with the given id.
func (s *ListingStore) Get(id string) (models.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.Listing{}, false
}

// Add appends a listing.
func (s *ListingStore) Add(l models.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, l)
}

// Remove deletes the listing with the given id.
func (s *ListingStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}
