package services

import (
	"errors"
	"fmt"
	"strings"

	"lend-closet-backend/internal/models"
	"lend-closet-backend/internal/store"
)

var (
	// ErrUserNotFound is returned on a phone lookup miss or an unknown
	// user id.
	ErrUserNotFound = errors.New("no user found")
	// ErrPhoneTooShort is returned when a lookup number has fewer than
	// ten digits.
	ErrPhoneTooShort = errors.New("phone number must have at least 10 digits")
	// ErrNotFriend gates the contact action to confirmed friends.
	ErrNotFriend = errors.New("user is not a friend")
	// ErrUnknownMethod is returned for unsupported contact methods.
	ErrUnknownMethod = errors.New("unknown contact method")
	// ErrAppUnavailable is returned when the target messaging app cannot
	// handle the deep link.
	ErrAppUnavailable = errors.New("messaging app is not available")
)

// LinkOpener is the deep-link collaborator: it attempts to open a URI and
// reports whether the target app could handle it. Failure is terminal per
// attempt; there is no retry.
type LinkOpener interface {
	Open(url string) (bool, error)
}

// FriendService handles phone lookup, friend management and the contact
// deep-link action.
type FriendService struct {
	users  *store.UserStore
	opener LinkOpener
	hub    *EventHub
}

// NewFriendService creates a new friend service.
func NewFriendService(users *store.UserStore, opener LinkOpener, hub *EventHub) *FriendService {
	return &FriendService{
		users:  users,
		opener: opener,
		hub:    hub,
	}
}

// Friends returns the users flagged as friends.
func (s *FriendService) Friends() []models.User {
	var out []models.User
	for _, u := range s.users.Users() {
		if u.IsFriend {
			out = append(out, u)
		}
	}
	return out
}

// Lookup matches a phone number against the user list by last-10-digit
// equality, ignoring punctuation. Numbers with fewer than ten digits are
// rejected before searching.
func (s *FriendService) Lookup(phone string) (models.User, error) {
	digits := digitsOnly(phone)
	if len(digits) < 10 {
		return models.User{}, ErrPhoneTooShort
	}

	last10 := digits[len(digits)-10:]
	for _, u := range s.users.Users() {
		d := digitsOnly(u.Phone)
		if len(d) >= 10 && d[len(d)-10:] == last10 {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// AddFriend flags the user as a friend. Store subscribers observe the
// change before this returns.
func (s *FriendService) AddFriend(id string) (models.User, error) {
	if !s.users.SetFriend(id) {
		return models.User{}, ErrUserNotFound
	}
	u, _ := s.users.Get(id)
	s.hub.Broadcast(EventFriendAdded, "", u)
	return u, nil
}

// ContactLink builds the deep-link URI for contacting a friend. Supported
// methods are sms, imessage (same scheme) and whatsapp.
func (s *FriendService) ContactLink(id, method string) (string, error) {
	u, ok := s.users.Get(id)
	if !ok {
		return "", ErrUserNotFound
	}
	if !u.IsFriend {
		return "", ErrNotFriend
	}

	digits := digitsOnly(u.Phone)
	switch method {
	case "sms", "imessage":
		return "sms:" + digits, nil
	case "whatsapp":
		return fmt.Sprintf("whatsapp://send?phone=%s", digits), nil
	default:
		return "", ErrUnknownMethod
	}
}

// Contact builds the deep link and hands it to the opener. When the target
// app is unavailable the failure surfaces as ErrAppUnavailable; there is
// no fallback.
func (s *FriendService) Contact(id, method string) (string, error) {
	url, err := s.ContactLink(id, method)
	if err != nil {
		return "", err
	}

	supported, err := s.opener.Open(url)
	if err != nil {
		return "", fmt.Errorf("failed to open link: %w", err)
	}
	if !supported {
		return "", ErrAppUnavailable
	}
	return url, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
