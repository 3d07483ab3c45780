package service

import (
	"context"
	"fmt"
	"time"

	"smartclub/api/internal/model"
	"smartclub/api/internal/repository"
)

type CheckoutService struct {
	repo *repository.StoreRepository
}

func NewCheckoutService(repo *repository.StoreRepository) *CheckoutService {
	return &CheckoutService{repo: repo}
}

// CheckoutResult is what a committed checkout reports back.
type CheckoutResult struct {
	OrderID   int       `json:"order_id"`
	Total     float64   `json:"total"`
	OrderDate time.Time `json:"order_date"`
}

// Checkout converts a cart into a persisted order, or leaves all state
// untouched and reports why. The whole write phase runs in one transaction:
// every referenced product row is locked in a single fetch before any stock
// comparison, so two concurrent checkouts cannot both pass the stock check
// on stale reads.
func (s *CheckoutService) Checkout(ctx context.Context, userID int, items []model.CheckoutItem) (*CheckoutResult, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}

	// Membership gate. Stock is re-validated inside the transaction below
	// regardless, since the gate and the transaction observe different
	// points in time.
	membership, err := s.repo.GetMembership(ctx, userID)
	if err != nil {
		return nil, err
	}
	if membership == nil || membership.Status != "active" || membership.Expiration.Before(time.Now()) {
		return nil, ErrForbidden
	}

	var result *CheckoutResult
	err = s.repo.RunAtomic(ctx, func(ctx context.Context) error {
		// 1. Lock every distinct referenced product in one fetch.
		ids := distinctProductIDs(items)
		locked, err := s.repo.LockProducts(ctx, ids)
		if err != nil {
			return err
		}

		// 2. Validate all lines before any write. Duplicate product ids stay
		// independent lines but their quantities are summed against the
		// single locked stock value.
		needed := make(map[int]int, len(ids))
		for _, it := range items {
			if _, ok := locked[it.ProductID]; !ok {
				return &NotFoundError{ProductID: it.ProductID}
			}
			needed[it.ProductID] += it.Quantity
		}
		for _, id := range ids {
			if needed[id] > locked[id].Stock {
				return &InsufficientStockError{ProductID: id}
			}
		}

		// 3. Compute total from the prices read under the lock.
		var total float64
		orderItems := make([]model.OrderItem, 0, len(items))
		for _, it := range items {
			price := locked[it.ProductID].Price
			total += price * float64(it.Quantity)
			orderItems = append(orderItems, model.OrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     price,
			})
		}

		// 4. Persist the order, its lines, and the stock decrements.
		orderID, orderDate, err := s.repo.CreateOrder(ctx, userID, total)
		if err != nil {
			return err
		}
		if err := s.repo.CreateOrderItems(ctx, orderID, orderItems); err != nil {
			return err
		}
		for _, id := range ids {
			if err := s.repo.DecrementStock(ctx, id, needed[id]); err != nil {
				return err
			}
		}

		result = &CheckoutResult{OrderID: orderID, Total: total, OrderDate: orderDate}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func validateItems(items []model.CheckoutItem) error {
	if len(items) == 0 {
		return &InvalidRequestError{Reason: "items must be a non-empty array"}
	}
	for _, it := range items {
		if it.ProductID <= 0 {
			return &InvalidRequestError{Reason: fmt.Sprintf("invalid product_id: %d", it.ProductID)}
		}
		if it.Quantity <= 0 {
			return &InvalidRequestError{Reason: fmt.Sprintf("invalid quantity for product %d: %d", it.ProductID, it.Quantity)}
		}
	}
	return nil
}

func distinctProductIDs(items []model.CheckoutItem) []int {
	seen := make(map[int]bool, len(items))
	ids := make([]int, 0, len(items))
	for _, it := range items {
		if !seen[it.ProductID] {
			seen[it.ProductID] = true
			ids = append(ids, it.ProductID)
		}
	}
	return ids
}
