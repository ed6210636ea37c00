package category

import (
	"context"

	dom "example.com/catalog-api/internal/domain/category"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*dom.Category, error) {
	return s.repo.List(ctx)
}
