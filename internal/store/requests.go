package store

import (
	"sync"

	"lend-closet-backend/internal/models"
)

// RequestStore holds the borrow requests the current user has made. A
// request shares its id with the product it targets, and at most one
// request exists per product id (first write wins).
type RequestStore struct {
	mu    sync.RWMutex
	items []models.ActivityRecord
}

// NewRequestStore creates an empty request store.
func NewRequestStore() *RequestStore {
	return &RequestStore{}
}

// Reset drops all requests.
func (s *RequestStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Requests returns a snapshot of all requests in insertion order.
func (s *RequestStore) Requests() []models.ActivityRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ActivityRecord, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the request for the given product id.
func (s *RequestStore) Get(id string) (models.ActivityRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.ActivityRecord{}, false
}

// Add inserts a request unless one already exists for the same product id.
// Reports whether the request was inserted.
func (s *RequestStore) Add(rec models.ActivityRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == rec.ID {
			return false
		}
	}
	s.items = append(s.items, rec)
	return true
}

// SetStatus updates the lifecycle status of a request.
func (s *RequestStore) SetStatus(id string, status models.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id && s.items[i].Activity != nil {
			s.items[i].Activity.Status = status
			return true
		}
	}
	return false
}

// Remove deletes the request for the given product id.
func (s *RequestStore) Remove(id string) bool {
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
