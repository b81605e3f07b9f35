package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"lend-closet-backend/internal/models"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func seedDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, "products.json", `[
		{"id": "p1", "brand": "Reformation", "title": "Floral Midi Dress",
		 "owner": {"name": "Alice Nguyen", "phone": "(415) 555-0132"}}
	]`)
	writeFixture(t, dir, "users.json", `[
		{"id": "u1", "name": "Alice Nguyen", "phone": "(415) 555-0132", "isFriend": true}
	]`)
	writeFixture(t, dir, "activity.json", `[
		{"id": "p1", "title": "Floral Midi Dress",
		 "activity": {"role": "borrowed", "direction": "from",
		  "person": {"name": "Alice Nguyen"}, "status": "current", "dueDate": "2026-09-12"}}
	]`)
	writeFixture(t, dir, "profile.json", `{
		"name": "You", "location": "San Francisco, CA",
		"stats": {"items": 0, "friends": 0, "borrows": 0, "lends": 0},
		"listings": [{"id": "L1", "title": "Linen Shirt Dress", "imageUrl": "file:///l1.jpg"}]
	}`)
	return dir
}

func TestLoad(t *testing.T) {
	set, err := Load(seedDir(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(set.Products) != 1 || set.Products[0].ID != "p1" {
		t.Errorf("unexpected products: %+v", set.Products)
	}
	if set.Products[0].Owner == nil || set.Products[0].Owner.Name != "Alice Nguyen" {
		t.Error("product owner not parsed")
	}
	if len(set.Users) != 1 || !set.Users[0].IsFriend {
		t.Errorf("unexpected users: %+v", set.Users)
	}
	if len(set.Activity) != 1 {
		t.Fatalf("unexpected activity: %+v", set.Activity)
	}
	if act := set.Activity[0].Activity; act == nil || act.Role != models.RoleBorrowed || act.Status != models.StatusCurrent {
		t.Errorf("activity relationship not parsed: %+v", set.Activity[0].Activity)
	}
	if set.Profile.Name != "You" || len(set.Profile.Listings) != 1 {
		t.Errorf("unexpected profile: %+v", set.Profile)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "products.json", `[]`)

	if _, err := Load(dir); err == nil {
		t.Fatal("expected an error for missing fixture files")
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := seedDir(t)
	writeFixture(t, dir, "activity.json", `{not json`)

	if _, err := Load(dir); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
