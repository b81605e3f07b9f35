package services

import (
	"errors"
	"strings"

	"lend-closet-backend/internal/models"
)

// ErrProductNotFound is returned when no catalog product has the requested id.
var ErrProductNotFound = errors.New("item not found")

// CatalogService serves the fixture product catalog. The catalog is
// immutable for the session.
type CatalogService struct {
	products []models.Product
}

// NewCatalogService creates a catalog service over the fixture products.
func NewCatalogService(products []models.Product) *CatalogService {
	return &CatalogService{products: products}
}

// Search returns products whose title or brand contains the query,
// case-insensitively. An empty query returns the full catalog.
func (s *CatalogService) Search(query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]models.Product, len(s.products))
		copy(out, s.products)
		return out
	}

	var out []models.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) {
			out = append(out, p)
		}
	}
	return out
}

// Get returns the product with the given id.
func (s *CatalogService) Get(id string) (models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}
