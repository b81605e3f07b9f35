package services

import (
	"errors"
	"testing"

	"lend-closet-backend/internal/store"
)

type fakeOpener struct {
	supported bool
	err       error
	lastURL   string
}

func (f *fakeOpener) Open(url string) (bool, error) {
	f.lastURL = url
	return f.supported, f.err
}

func newFriendEnv(opener LinkOpener) (*FriendService, *store.UserStore) {
	users := store.NewUserStore(fixtureUsers())
	return NewFriendService(users, opener, NewEventHub()), users
}

func TestLookup_MatchesLastTenDigits(t *testing.T) {
	svc, _ := newFriendEnv(&fakeOpener{supported: true})

	tests := []struct {
		name  string
		phone string
		want  string
		err   error
	}{
		{"formatted", "(415) 555-0132", "u1", nil},
		{"bare digits", "4155550132", "u1", nil},
		{"country prefix ignored", "+1 (415) 555-0178", "u2", nil},
		{"dots", "628.555.0114", "u3", nil},
		{"too short", "555-0132", "", ErrPhoneTooShort},
		{"no match", "9995550000", "", ErrUserNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := svc.Lookup(tt.phone)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("lookup: %v", err)
			}
			if u.ID != tt.want {
				t.Errorf("expected %s, got %s", tt.want, u.ID)
			}
		})
	}
}

func TestAddFriend_VisibleToSubscribers(t *testing.T) {
	svc, users := newFriendEnv(&fakeOpener{supported: true})

	var sawFriend bool
	unsub := users.Subscribe(func() {
		u, _ := users.Get("u2")
		sawFriend = u.IsFriend
	})
	defer unsub()

	u, err := svc.AddFriend("u2")
	if err != nil {
		t.Fatalf("add friend: %v", err)
	}
	if !u.IsFriend {
		t.Error("returned user should be a friend")
	}
	if !sawFriend {
		t.Error("subscriber should observe the change synchronously")
	}

	if _, err := svc.AddFriend("nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFriends_FiltersByFlag(t *testing.T) {
	svc, _ := newFriendEnv(&fakeOpener{supported: true})

	friends := svc.Friends()
	if len(friends) != 2 {
		t.Fatalf("expected 2 friends, got %d", len(friends))
	}

	svc.AddFriend("u2")
	if len(svc.Friends()) != 3 {
		t.Error("added friend should appear in the list")
	}
}

func TestContactLink_Schemes(t *testing.T) {
	svc, _ := newFriendEnv(&fakeOpener{supported: true})

	tests := []struct {
		method string
		want   string
	}{
		{"sms", "sms:4155550132"},
		{"imessage", "sms:4155550132"},
		{"whatsapp", "whatsapp://send?phone=4155550132"},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			url, err := svc.ContactLink("u1", tt.method)
			if err != nil {
				t.Fatalf("contact link: %v", err)
			}
			if url != tt.want {
				t.Errorf("expected %s, got %s", tt.want, url)
			}
		})
	}

	if _, err := svc.ContactLink("u1", "carrier-pigeon"); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("expected ErrUnknownMethod, got %v", err)
	}
	if _, err := svc.ContactLink("u2", "sms"); !errors.Is(err, ErrNotFriend) {
		t.Errorf("expected ErrNotFriend for a non-friend, got %v", err)
	}
}

func TestContact_AppUnavailable(t *testing.T) {
	opener := &fakeOpener{supported: false}
	svc, _ := newFriendEnv(opener)

	_, err := svc.Contact("u1", "whatsapp")
	if !errors.Is(err, ErrAppUnavailable) {
		t.Fatalf("expected ErrAppUnavailable, got %v", err)
	}
	if opener.lastURL != "whatsapp://send?phone=4155550132" {
		t.Errorf("opener should have been handed the deep link, got %q", opener.lastURL)
	}
}

func TestSchemeOpener(t *testing.T) {
	o := NewSchemeOpener([]string{"sms"})

	supported, err := o.Open("sms:4155550132")
	if err != nil || !supported {
		t.Errorf("sms should be supported, got supported=%v err=%v", supported, err)
	}

	supported, err = o.Open("whatsapp://send?phone=4155550132")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if supported {
		t.Error("whatsapp should be unsupported with an sms-only allow list")
	}
}
