package service

import (
	"context"

	"smartclub/api/internal/model"
	"smartclub/api/internal/repository"
)

type OrderService struct {
	repo *repository.StoreRepository
}

func NewOrderService(repo *repository.StoreRepository) *OrderService {
	return &OrderService{repo: repo}
}

// History returns the user's orders with their line items, oldest first.
func (s *OrderService) History(ctx context.Context, userID int) ([]model.Order, error) {
	return s.repo.OrdersByUser(ctx, userID)
}
