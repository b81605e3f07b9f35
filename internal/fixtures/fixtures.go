package fixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"lend-closet-backend/internal/models"
)

// Set holds the fixture data the stores are rebuilt from on every start.
// Nothing the process does survives a restart; this is the ground truth
// for a session.
type Set struct {
	Products []models.Product
	Users    []models.User
	Activity []models.ActivityRecord
	Profile  models.Profile
}

// Load reads the fixture JSON files from dir.
func Load(dir string) (*Set, error) {
	var set Set

	if err := readJSON(filepath.Join(dir, "products.json"), &set.Products); err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	if err := readJSON(filepath.Join(dir, "users.json"), &set.Users); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if err := readJSON(filepath.Join(dir, "activity.json"), &set.Activity); err != nil {
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}
	if err := readJSON(filepath.Join(dir, "profile.json"), &set.Profile); err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return &set, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
