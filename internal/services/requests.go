package services

import (
	"errors"
	"time"

	"lend-closet-backend/internal/models"
	"lend-closet-backend/internal/store"
)

// ErrRequestNotFound is returned when no borrow request targets the given
// product id.
var ErrRequestNotFound = errors.New("request not found")

// RequestService owns the borrow requests the current user has made.
type RequestService struct {
	requests *store.RequestStore
	catalog  *CatalogService
	hub      *EventHub
	viewer   models.Person
}

// NewRequestService creates a new request service.
func NewRequestService(requests *store.RequestStore, catalog *CatalogService, hub *EventHub, viewer models.Person) *RequestService {
	return &RequestService{
		requests: requests,
		catalog:  catalog,
		hub:      hub,
		viewer:   viewer,
	}
}

// List returns the current requests in insertion order.
func (s *RequestService) List() []models.ActivityRecord {
	return s.requests.Requests()
}

// Create builds a borrow request from the catalog product and inserts it.
// The insert is idempotent per product id: a second call returns the
// existing request with created=false.
func (s *RequestService) Create(productID string) (models.ActivityRecord, bool, error) {
	product, err := s.catalog.Get(productID)
	if err != nil {
		return models.ActivityRecord{}, false, err
	}

	rec := models.ActivityRecord{
		Product: product,
		Activity: &models.ActivityInfo{
			Role:          models.RoleRequesting,
			Direction:     models.DirectionTo,
			Person:        s.viewer,
			Status:        models.StatusRequested,
			RequestedDate: time.Now().Format("2006-01-02"),
		},
	}

	if !s.requests.Add(rec) {
		existing, _ := s.requests.Get(productID)
		return existing, false, nil
	}

	s.hub.Broadcast(EventRequestCreated, productID, rec.Activity)
	return rec, true, nil
}

// Cancel removes the request entirely.
func (s *RequestService) Cancel(productID string) error {
	if !s.requests.Remove(productID) {
		return ErrRequestNotFound
	}
	s.hub.Broadcast(EventRequestCancelled, productID, nil)
	return nil
}

// MarkApproved is the borrower-side half of an approval. The owner's copy
// is updated separately by the activity service; the two sides are
// independent records.
func (s *RequestService) MarkApproved(productID string) error {
	if !s.requests.SetStatus(productID, models.StatusApproved) {
		return ErrRequestNotFound
	}
	return nil
}
