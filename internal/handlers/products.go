package handlers

import (
	"errors"
	"net/http"

	"lend-closet-backend/internal/services"

	"github.com/go-chi/chi/v5"
)

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	catalog *services.CatalogService
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalog *services.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// ListProducts handles GET /api/v1/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	products := h.catalog.Search(query)

	response := map[string]interface{}{
		"products": products,
		"total":    len(products),
	}
	respondJSON(w, response, http.StatusOK)
}

// GetProduct handles GET /api/v1/products/{product_id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, "product_id is required", http.StatusBadRequest)
		return
	}

	product, err := h.catalog.Get(productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			respondError(w, err.Error(), http.StatusNotFound)
			return
		}
		respondError(w, "Failed to get product", http.StatusInternalServerError)
		return
	}

	respondJSON(w, product, http.StatusOK)
}
