package store

import (
	"sync"

	"lend-closet-backend/internal/models"
)

// UserStore holds the fixture-seeded users and the friend flag. Mutations
// notify subscribers synchronously so dependent views recompute before the
// mutating call returns.
type UserStore struct {
	mu    sync.RWMutex
	users []models.User

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// NewUserStore creates a user store seeded with the given users.
func NewUserStore(initial []models.User) *UserStore {
	s := &UserStore{subs: make(map[int]func())}
	s.Reset(initial)
	return s
}

// Reset replaces the store contents with a fresh copy of the fixture users.
func (s *UserStore) Reset(users []models.User) {
	s.mu.Lock()
	s.users = make([]models.User, len(users))
	copy(s.users, users)
	s.mu.Unlock()
	s.notify()
}

// Users returns a snapshot of all users.
func (s *UserStore) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Get returns the user with the given id.
func (s *UserStore) Get(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// SetFriend marks the user with the given id as a friend and notifies
// subscribers. Reports whether the user exists.
func (s *UserStore) SetFriend(id string) bool {
	s.mu.Lock()
	found := false
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].IsFriend = true
			found = true
		}
	}
	s.mu.Unlock()
	if found {
		s.notify()
	}
	return found
}

// Subscribe registers a callback invoked synchronously after every mutation.
// The returned function removes the subscription.
func (s *UserStore) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *UserStore) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
