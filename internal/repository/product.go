package repository

import (
	"context"
	"fmt"

	"smartclub/api/internal/model"
)

// LockedProduct is the price/stock snapshot read under a row lock.
type LockedProduct struct {
	ID    int
	Price float64
	Stock int
}

// LockProducts acquires FOR UPDATE locks on every listed product in a single
// fetch and returns the locked rows keyed by id. Products that do not exist
// are simply absent from the map.
func (r *StoreRepository) LockProducts(ctx context.Context, ids []int) (map[int]LockedProduct, error) {
	rows, err := r.getExecutor(ctx).Query(ctx,
		"SELECT id, price, stock FROM products WHERE id = ANY($1::int[]) FOR UPDATE", ids)
	if err != nil {
		return nil, fmt.Errorf("failed to lock products: %w", err)
	}
	defer rows.Close()

	locked := make(map[int]LockedProduct, len(ids))
	for rows.Next() {
		var p LockedProduct
		if err := rows.Scan(&p.ID, &p.Price, &p.Stock); err != nil {
			return nil, fmt.Errorf("failed to scan locked product: %w", err)
		}
		locked[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read locked products: %w", err)
	}
	return locked, nil
}

// DecrementStock reduces a product's stock by quantity.
func (r *StoreRepository) DecrementStock(ctx context.Context, productID, quantity int) error {
	_, err := r.getExecutor(ctx).Exec(ctx,
		"UPDATE products SET stock = stock - $1 WHERE id = $2", quantity, productID)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	return nil
}

// ListProducts returns the whole catalog ordered by id.
func (r *StoreRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.getExecutor(ctx).Query(ctx,
		"SELECT id, name, category, price, stock, image_url, created_at FROM products ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	return products, nil
}
