package service

import (
	"context"

	"smartclub/api/internal/model"
	"smartclub/api/internal/repository"
)

type CatalogService struct {
	repo *repository.StoreRepository
}

func NewCatalogService(repo *repository.StoreRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// ListProducts returns the catalog ordered by id ascending.
func (s *CatalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.repo.ListProducts(ctx)
}
