package store

import (
	"testing"

	"lend-closet-backend/internal/models"
)

func seedUsers() []models.User {
	return []models.User{
		{ID: "u1", Name: "Alice Nguyen", Phone: "(415) 555-0132", IsFriend: true},
		{ID: "u2", Name: "Maya Patel", Phone: "(415) 555-0178"},
	}
}

func TestUserStore_SetFriendNotifiesSynchronously(t *testing.T) {
	s := NewUserStore(seedUsers())

	notified := 0
	var seen bool
	unsub := s.Subscribe(func() {
		notified++
		// The mutation must be visible inside the callback.
		u, _ := s.Get("u2")
		seen = u.IsFriend
	})
	defer unsub()

	if !s.SetFriend("u2") {
		t.Fatal("expected SetFriend to find u2")
	}
	if notified != 1 {
		t.Fatalf("expected 1 notification, got %d", notified)
	}
	if !seen {
		t.Error("friend flag was not visible to the subscriber")
	}
}

func TestUserStore_SetFriendMissingUser(t *testing.T) {
	s := NewUserStore(seedUsers())

	notified := false
	unsub := s.Subscribe(func() { notified = true })
	defer unsub()

	if s.SetFriend("nobody") {
		t.Error("expected SetFriend to report false for unknown id")
	}
	if notified {
		t.Error("no notification expected for a no-op mutation")
	}
}

func TestUserStore_Unsubscribe(t *testing.T) {
	s := NewUserStore(seedUsers())

	calls := 0
	unsub := s.Subscribe(func() { calls++ })
	s.SetFriend("u2")
	unsub()
	s.Reset(seedUsers())

	if calls != 1 {
		t.Errorf("expected 1 call before unsubscribe, got %d", calls)
	}
}
