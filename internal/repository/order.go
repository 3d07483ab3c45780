package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"smartclub/api/internal/model"
)

// CreateOrder inserts a new order and returns its generated id and date.
func (r *StoreRepository) CreateOrder(ctx context.Context, userID int, total float64) (int, time.Time, error) {
	var id int
	var orderDate time.Time
	err := r.getExecutor(ctx).QueryRow(ctx,
		"INSERT INTO orders (user_id, total) VALUES ($1, $2) RETURNING id, order_date",
		userID, total).Scan(&id, &orderDate)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to create order: %w", err)
	}
	return id, orderDate, nil
}

// CreateOrderItems inserts one row per line, batched in a single round trip.
func (r *StoreRepository) CreateOrderItems(ctx context.Context, orderID int, items []model.OrderItem) error {
	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(
			"INSERT INTO order_items (order_id, product_id, quantity, price) VALUES ($1, $2, $3, $4)",
			orderID, it.ProductID, it.Quantity, it.Price)
	}

	results := r.getExecutor(ctx).SendBatch(ctx, batch)
	defer results.Close()

	for range items {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}
	return nil
}

// OrdersByUser returns the user's orders with their line items, ordered by
// order id ascending. Items within an order keep insertion order.
func (r *StoreRepository) OrdersByUser(ctx context.Context, userID int) ([]model.Order, error) {
	rows, err := r.getExecutor(ctx).Query(ctx,
		`SELECT o.id, o.total, o.order_date, oi.product_id, oi.quantity, oi.price
		 FROM orders o
		 JOIN order_items oi ON oi.order_id = o.id
		 WHERE o.user_id = $1
		 ORDER BY o.id ASC, oi.id ASC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var (
			orderID   int
			total     float64
			orderDate time.Time
			item      model.OrderItem
		)
		if err := rows.Scan(&orderID, &total, &orderDate, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}

		if len(orders) == 0 || orders[len(orders)-1].ID != orderID {
			orders = append(orders, model.Order{
				ID:        orderID,
				UserID:    userID,
				Total:     total,
				OrderDate: orderDate,
			})
		}
		last := &orders[len(orders)-1]
		last.Items = append(last.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}
	return orders, nil
}
