package services

import (
	"lend-closet-backend/internal/models"
	"lend-closet-backend/internal/store"
)

const viewerName = "You"

var viewer = models.Person{Name: viewerName, AvatarURL: "https://i.pravatar.cc/100?img=1"}

func fixtureProducts() []models.Product {
	return []models.Product{
		{
			ID:    "p1",
			Brand: "Reformation",
			Title: "Floral Midi Dress",
			Owner: &models.Owner{Name: "Alice Nguyen", Phone: "(415) 555-0132"},
		},
		{
			ID:    "p2",
			Brand: "Levi's",
			Title: "Vintage Denim Jacket",
			Owner: &models.Owner{Name: "Maya Patel", Phone: "(415) 555-0178"},
		},
	}
}

func fixtureActivity() []models.ActivityRecord {
	return []models.ActivityRecord{
		{
			Product: models.Product{
				ID:    "p2",
				Title: "Vintage Denim Jacket",
				Owner: &models.Owner{Name: "Maya Patel"},
			},
			Activity: &models.ActivityInfo{
				Role:      models.RoleBorrowed,
				Direction: models.DirectionFrom,
				Person:    models.Person{Name: "Maya Patel"},
				Status:    models.StatusCurrent,
				DueDate:   "2026-09-12",
			},
		},
		{
			Product: models.Product{
				ID:    "L1",
				Title: "Linen Shirt Dress",
				Owner: &models.Owner{Name: viewerName},
			},
			Activity: &models.ActivityInfo{
				Role:      models.RoleLending,
				Direction: models.DirectionTo,
				Person:    models.Person{Name: "Alice Nguyen"},
				Status:    models.StatusCurrent,
				DueDate:   "2026-09-20",
			},
		},
		{
			Product: models.Product{
				ID:    "L2",
				Title: "Wool Overcoat",
				Owner: &models.Owner{Name: viewerName},
			},
			Activity: &models.ActivityInfo{
				Role:          models.RoleLending,
				Direction:     models.DirectionTo,
				Person:        models.Person{Name: "Sofia Reyes"},
				Status:        models.StatusRequested,
				RequestedDate: "2026-08-28",
			},
		},
	}
}

func fixtureListings() []models.Listing {
	return []models.Listing{
		{ID: "L1", Title: "Linen Shirt Dress", ImageURL: "https://images.example.com/own1.jpg"},
		{ID: "L2", Title: "Wool Overcoat", ImageURL: "https://images.example.com/own2.jpg"},
	}
}

func fixtureUsers() []models.User {
	return []models.User{
		{ID: "u1", Name: "Alice Nguyen", Phone: "(415) 555-0132", IsFriend: true},
		{ID: "u2", Name: "Maya Patel", Phone: "+1 415-555-0178"},
		{ID: "u3", Name: "Sofia Reyes", Phone: "628.555.0114", IsFriend: true},
	}
}

type testEnv struct {
	activities *store.ActivityStore
	requests   *store.RequestStore
	listings   *store.ListingStore
	users      *store.UserStore

	hub      *EventHub
	catalog  *CatalogService
	activity *ActivityService
	request  *RequestService
	listing  *ListingService
	profile  *ProfileService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		activities: store.NewActivityStore(fixtureActivity()),
		requests:   store.NewRequestStore(),
		listings:   store.NewListingStore(fixtureListings()),
		users:      store.NewUserStore(fixtureUsers()),
		hub:        NewEventHub(),
	}
	env.catalog = NewCatalogService(fixtureProducts())
	env.activity = NewActivityService(env.activities, env.requests, env.hub, viewerName)
	env.request = NewRequestService(env.requests, env.catalog, env.hub, viewer)
	env.listing = NewListingService(env.listings, env.activities, env.hub, viewerName)
	env.profile = NewProfileService(models.Profile{Name: viewerName}, env.users, env.activities, env.listing)
	return env
}
