// Package seed populates an empty catalog with the fixed starter data.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	domcategory "example.com/catalog-api/internal/domain/category"
	domproduct "example.com/catalog-api/internal/domain/product"
)

// Result reports which tables were populated by a Run.
type Result struct {
	CategoriesSeeded bool
	ProductsSeeded   bool
}

type Service struct {
	categoryRepo domcategory.Repository
	productRepo  domproduct.Repository
	validator    *validator.Validate
	log          logrus.FieldLogger
	now          func() time.Time

	categories []categoryFixture
	products   []productFixture
}

func NewService(categoryRepo domcategory.Repository, productRepo domproduct.Repository, logger logrus.FieldLogger) *Service {
	return &Service{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		validator:    validator.New(),
		log:          logger.WithField("component", "seed"),
		now:          time.Now,
		categories:   defaultCategories,
		products:     defaultProducts,
	}
}

// Run inserts the starter categories and products into whichever of the
// two tables is empty. Tables are checked independently; a table that
// already has rows is never touched.
func (s *Service) Run(ctx context.Context) (Result, error) {
	var res Result

	seeded, err := s.seedCategories(ctx)
	if err != nil {
		return res, err
	}
	res.CategoriesSeeded = seeded

	seeded, err = s.seedProducts(ctx)
	if err != nil {
		return res, err
	}
	res.ProductsSeeded = seeded

	return res, nil
}

func (s *Service) seedCategories(ctx context.Context) (bool, error) {
	n, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed categories: %w", err)
	}
	if n > 0 {
		s.log.WithField("rows", n).Info("categories already present, skipping seed")
		return false, nil
	}

	batch := make([]*domcategory.Category, 0, len(s.categories))
	for _, f := range s.categories {
		if err := s.validator.Struct(f); err != nil {
			return false, fmt.Errorf("seed category %q: %w", f.Name, err)
		}
		batch = append(batch, &domcategory.Category{Name: f.Name, Count: f.Count})
	}
	if err := s.categoryRepo.CreateBatch(ctx, batch); err != nil {
		return false, fmt.Errorf("seed categories: %w", err)
	}

	s.log.WithField("rows", len(batch)).Info("categories seeded")
	return true, nil
}

func (s *Service) seedProducts(ctx context.Context) (bool, error) {
	n, err := s.productRepo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed products: %w", err)
	}
	if n > 0 {
		s.log.WithField("rows", n).Info("products already present, skipping seed")
		return false, nil
	}

	createdAt := s.now().UTC()
	batch := make([]*domproduct.Product, 0, len(s.products))
	for _, f := range s.products {
		if err := s.validator.Struct(f); err != nil {
			return false, fmt.Errorf("seed product %q: %w", f.Name, err)
		}
		batch = append(batch, &domproduct.Product{
			Name:        f.Name,
			Price:       f.Price,
			Image:       f.Image,
			Category:    f.Category,
			Description: f.Description,
			CreatedAt:   createdAt,
		})
	}
	if err := s.productRepo.CreateBatch(ctx, batch); err != nil {
		return false, fmt.Errorf("seed products: %w", err)
	}

	s.log.WithField("rows", len(batch)).Info("products seeded")
	return true, nil
}
