package services

import (
	"errors"
	"strings"
	"sync"

	"lend-closet-backend/internal/models"
	"lend-closet-backend/internal/store"
)

var (
	// ErrActivityNotFound is returned when no record carries the given id.
	ErrActivityNotFound = errors.New("activity record not found")
	// ErrNoRelationship is returned when the record exists but has no
	// active lending relationship to act on.
	ErrNoRelationship = errors.New("record has no active relationship")
	// ErrNotRequested is returned when approve or deny targets a record
	// that is not in the requested state.
	ErrNotRequested = errors.New("record is not awaiting approval")
	// ErrReturnDateRequired blocks the detailed approve variant until a
	// return date is supplied.
	ErrReturnDateRequired = errors.New("return date is required")
)

// Buckets partitions the combined activity and request snapshot into the
// four display views. Each bucket keeps the insertion order of the
// underlying stores.
type Buckets struct {
	CurrentBorrowing []models.ActivityRecord `json:"current_borrowing"`
	CurrentLending   []models.ActivityRecord `json:"current_lending"`
	YourRequests     []models.ActivityRecord `json:"your_requests"`
	ApproveRequests  []models.ActivityRecord `json:"approve_requests"`
}

// ApproveDetails carries the optional handoff terms for the detailed
// approve variant.
type ApproveDetails struct {
	PickupLocation      string `json:"pickup_location"`
	ReturnDate          string `json:"return_date"`
	WashingInstructions string `json:"washing_instructions"`
}

// ActivityService owns the lending lifecycle: bucketing, approve, deny and
// return. Deny is a two-step action: the first call arms the record, the
// second call with the same id applies. The arming slot is per-id and
// single-slot, so arming a different record disarms the first.
type ActivityService struct {
	activities *store.ActivityStore
	requests   *store.RequestStore
	hub        *EventHub
	viewer     string

	armMu     sync.Mutex
	armedDeny string
}

// NewActivityService creates a new activity service.
func NewActivityService(activities *store.ActivityStore, requests *store.RequestStore, hub *EventHub, viewer string) *ActivityService {
	return &ActivityService{
		activities: activities,
		requests:   requests,
		hub:        hub,
		viewer:     viewer,
	}
}

// Buckets computes the four views from the current snapshot. Pure with
// respect to the stores; completed records appear in no bucket.
func (s *ActivityService) Buckets() Buckets {
	items := s.activities.Items()
	items = append(items, s.requests.Requests()...)

	var b Buckets
	for _, it := range items {
		act := it.Activity
		if act == nil {
			continue
		}
		if act.Status == models.StatusCurrent && act.Role == models.RoleBorrowed {
			b.CurrentBorrowing = append(b.CurrentBorrowing, it)
		}
		if act.Status == models.StatusCurrent && act.Role == models.RoleLending {
			b.CurrentLending = append(b.CurrentLending, it)
		}
		if act.Person.Name == s.viewer &&
			(act.Status == models.StatusRequested || act.Status == models.StatusApproved) {
			b.YourRequests = append(b.YourRequests, it)
		}
		if it.Owner != nil && it.Owner.Name == s.viewer && act.Status == models.StatusRequested {
			b.ApproveRequests = append(b.ApproveRequests, it)
		}
	}
	return b
}

// Approve moves an incoming request forward on the owner's side. Without
// details the record goes requested -> approved. With details the record
// becomes an active loan (role=lending, status=current) carrying the
// handoff terms; the borrower's copy stays pending its own symmetric
// update. The detailed variant requires a return date.
func (s *ActivityService) Approve(id string, details *ApproveDetails) (models.ActivityRecord, error) {
	rec, ok := s.activities.Get(id)
	if !ok {
		return models.ActivityRecord{}, ErrActivityNotFound
	}
	if rec.Activity == nil {
		return models.ActivityRecord{}, ErrNoRelationship
	}
	if rec.Activity.Status != models.StatusRequested {
		return models.ActivityRecord{}, ErrNotRequested
	}

	if details == nil {
		s.activities.Update(id, func(r *models.ActivityRecord) {
			r.Activity.Status = models.StatusApproved
		})
	} else {
		if strings.TrimSpace(details.ReturnDate) == "" {
			return models.ActivityRecord{}, ErrReturnDateRequired
		}
		s.activities.Update(id, func(r *models.ActivityRecord) {
			r.Activity.Role = models.RoleLending
			r.Activity.Direction = models.DirectionTo
			r.Activity.Status = models.StatusCurrent
			r.Activity.DueDate = details.ReturnDate
			r.Activity.PickupLocation = details.PickupLocation
			if details.WashingInstructions != "" {
				r.WashingInstructions = details.WashingInstructions
			}
		})
	}

	rec, _ = s.activities.Get(id)
	s.hub.Broadcast(EventRequestApproved, id, rec.Activity)
	return rec, nil
}

// Deny arms the record on the first call and removes the relationship on
// the second call with the same id. Reports whether the deny was applied.
func (s *ActivityService) Deny(id string) (bool, error) {
	rec, ok := s.activities.Get(id)
	if !ok {
		return false, ErrActivityNotFound
	}
	if rec.Activity == nil {
		return false, ErrNoRelationship
	}
	if rec.Activity.Status != models.StatusRequested {
		return false, ErrNotRequested
	}

	s.armMu.Lock()
	if s.armedDeny != id {
		s.armedDeny = id
		s.armMu.Unlock()
		return false, nil
	}
	s.armedDeny = ""
	s.armMu.Unlock()

	s.activities.ClearActivity(id)
	s.hub.Broadcast(EventRequestDenied, id, nil)
	return true, nil
}

// Return clears the relationship on the record, independent of the
// counterparty's copy.
func (s *ActivityService) Return(id string) error {
	rec, ok := s.activities.Get(id)
	if !ok {
		return ErrActivityNotFound
	}
	if rec.Activity == nil {
		return ErrNoRelationship
	}

	s.activities.ClearActivity(id)
	s.hub.Broadcast(EventItemReturned, id, nil)
	return nil
}
