package product

import (
	"context"

	dom "example.com/catalog-api/internal/domain/product"
)

// FeaturedLimit is the number of products returned by Featured.
const FeaturedLimit = 3

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter dom.ListFilter) ([]*dom.Product, error) {
	return s.repo.List(ctx, filter)
}

// Featured returns the first FeaturedLimit products in store order.
func (s *Service) Featured(ctx context.Context) ([]*dom.Product, error) {
	return s.repo.ListFirst(ctx, FeaturedLimit)
}
