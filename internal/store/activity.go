package store

import (
	"sync"

	"lend-closet-backend/internal/models"
)

// ActivityStore holds the lending/borrowing records for the session.
// Records keep their insertion order; reads return copies of the slice so
// callers can filter without holding the lock.
type ActivityStore struct {
	mu    sync.RWMutex
	items []models.ActivityRecord
}

// NewActivityStore creates an activity store seeded with the given records.
func NewActivityStore(initial []models.ActivityRecord) *ActivityStore {
	s := &ActivityStore{}
	s.Reset(initial)
	return s
}

// Reset replaces the store contents with a fresh copy of the fixture records.
func (s *ActivityStore) Reset(items []models.ActivityRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]models.ActivityRecord, len(items))
	copy(s.items, items)
}

// Items returns a snapshot of all records in insertion order.
func (s *ActivityStore) Items() []models.ActivityRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ActivityRecord, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the first record with the given id.
func (s *ActivityStore) Get(id string) (models.ActivityRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.ActivityRecord{}, false
}

// Add appends a record.
func (s *ActivityStore) Add(rec models.ActivityRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, rec)
}

// Update applies fn to every record with the given id and reports whether
// any record matched.
func (s *ActivityStore) Update(id string, fn func(*models.ActivityRecord)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for i := range s.items {
		if s.items[i].ID == id {
			fn(&s.items[i])
			found = true
		}
	}
	return found
}

// ClearActivity removes the relationship from every record with the given id,
// returning it to the "no active relationship" state.
func (s *ActivityStore) ClearActivity(id string) bool {
	return s.Update(id, func(rec *models.ActivityRecord) {
		rec.Activity = nil
	})
}

// Remove deletes every record with the given id and reports whether any
// record was removed.
func (s *ActivityStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	removed := false
	for _, it := range s.items {
		if it.ID == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
	return removed
}
