package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"smartclub/api/internal/handler"
	"smartclub/api/internal/repository"
	"smartclub/api/internal/service"
	"smartclub/api/internal/service/auth"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

const testSecret = "test-secret"

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load("../../.env")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		t.Fatalf("Unable to connect to database: %v", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		t.Fatalf("Unable to ping database: %v", err)
	}

	schema, err := os.ReadFile("../../migrations/001_init.sql")
	if err != nil {
		t.Fatalf("Failed to read schema: %v", err)
	}
	if _, err := pool.Exec(context.Background(), string(schema)); err != nil {
		t.Fatalf("Failed to apply schema: %v", err)
	}

	// Truncate tables to ensure clean state
	tables := []string{"order_items", "orders", "products", "users"} // Order matters due to FK
	for _, table := range tables {
		_, err := pool.Exec(context.Background(), fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		if err != nil {
			t.Fatalf("Failed to truncate table %s: %v", table, err)
		}
	}

	return pool
}

func newTestHandler(pool *pgxpool.Pool) *handler.Handler {
	repo := repository.NewStoreRepository(pool)
	authSvc := auth.NewService(repo, auth.Config{Secret: testSecret, TokenTTL: time.Hour})
	return handler.NewHandler(
		authSvc,
		service.NewCheckoutService(repo),
		service.NewCatalogService(repo),
		service.NewOrderService(repo),
	)
}

func doJSON(h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// signupAndLogin registers a fresh active member and returns a bearer token
// plus the user id.
func signupAndLogin(t *testing.T, h http.Handler, email string) (string, int) {
	t.Helper()

	w := doJSON(h, http.MethodPost, "/auth/signup", "", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "s3cret",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup failed: status %d, body %s", w.Code, w.Body.String())
	}
	var created struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode signup response: %v", err)
	}

	w = doJSON(h, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": "s3cret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: status %d, body %s", w.Code, w.Body.String())
	}
	var loggedIn struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &loggedIn); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	return loggedIn.Token, created.ID
}

func seedProduct(t *testing.T, pool *pgxpool.Pool, id int, name string, price float64, stock int) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		"INSERT INTO products (id, name, price, stock) VALUES ($1, $2, $3, $4)",
		id, name, price, stock)
	if err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
}

func productStock(t *testing.T, pool *pgxpool.Pool, id int) int {
	t.Helper()
	var stock int
	if err := pool.QueryRow(context.Background(), "SELECT stock FROM products WHERE id = $1", id).Scan(&stock); err != nil {
		t.Fatalf("Failed to query stock: %v", err)
	}
	return stock
}

func orderCount(t *testing.T, pool *pgxpool.Pool) int {
	t.Helper()
	var count int
	if err := pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM orders").Scan(&count); err != nil {
		t.Fatalf("Failed to count orders: %v", err)
	}
	return count
}
