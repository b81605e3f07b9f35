package services

import (
	"lend-closet-backend/internal/models"
	"lend-closet-backend/internal/store"
)

// ProfileService assembles the profile page payload. Stats are recomputed
// from the other entities on every read rather than stored authoritatively.
type ProfileService struct {
	profile    models.Profile
	users      *store.UserStore
	activities *store.ActivityStore
	listings   *ListingService
}

// NewProfileService creates a new profile service.
func NewProfileService(profile models.Profile, users *store.UserStore, activities *store.ActivityStore, listings *ListingService) *ProfileService {
	return &ProfileService{
		profile:    profile,
		users:      users,
		activities: activities,
		listings:   listings,
	}
}

// Profile returns the fixture profile with listings and stats derived from
// the current store state.
func (s *ProfileService) Profile() models.Profile {
	p := s.profile
	p.Listings = s.listings.List()
	p.Stats = s.Stats()
	return p
}

// Stats recomputes the counter record.
func (s *ProfileService) Stats() models.ProfileStats {
	var stats models.ProfileStats

	stats.Items = len(s.listings.List())

	for _, u := range s.users.Users() {
		if u.IsFriend {
			stats.Friends++
		}
	}

	for _, rec := range s.activities.Items() {
		if rec.Activity == nil || rec.Activity.Status != models.StatusCurrent {
			continue
		}
		switch rec.Activity.Role {
		case models.RoleBorrowed:
			stats.Borrows++
		case models.RoleLending:
			stats.Lends++
		}
	}

	return stats
}
