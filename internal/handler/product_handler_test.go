package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestListProducts(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	h := newTestHandler(pool)

	// Seed out of id order; the listing must come back ascending
	seedProduct(t, pool, 3, "Gamma", 3.00, 3)
	seedProduct(t, pool, 1, "Alpha", 1.00, 1)
	seedProduct(t, pool, 2, "Beta", 2.00, 2)

	w := doJSON(h, http.MethodGet, "/products", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d, body %s", w.Code, w.Body.String())
	}

	var products []struct {
		ID    int     `json:"id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
		Stock int     `json:"stock"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatalf("Failed to decode products: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("Expected 3 products, got %d", len(products))
	}
	for i, p := range products {
		if p.ID != i+1 {
			t.Errorf("Expected product id %d at position %d, got %d", i+1, i, p.ID)
		}
	}
	if products[0].Name != "Alpha" || products[0].Price != 1.00 || products[0].Stock != 1 {
		t.Errorf("Unexpected first product: %+v", products[0])
	}

	// Reading twice with no intervening writes yields identical results
	w2 := doJSON(h, http.MethodGet, "/products", "", nil)
	if w2.Body.String() != w.Body.String() {
		t.Errorf("Expected identical listings")
	}
}

func TestListProducts_Empty(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	h := newTestHandler(pool)

	w := doJSON(h, http.MethodGet, "/products", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]\n" {
		t.Errorf("Expected empty JSON array, got %q", body)
	}
}
