package product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "example.com/catalog-api/internal/domain/product"
)

type mockProductRepository struct {
	products   map[int64]*domproduct.Product
	lastFilter domproduct.ListFilter
	lastLimit  int
	listErr    error
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[int64]*domproduct.Product)}
}

func (m *mockProductRepository) CreateBatch(ctx context.Context, products []*domproduct.Product) error {
	for _, p := range products {
		p.ID = int64(len(m.products) + 1)
		m.products[p.ID] = p
	}
	return nil
}

func (m *mockProductRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.products)), nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	if p, ok := m.products[id]; ok {
		cloned := *p
		return &cloned, nil
	}
	return nil, domproduct.ErrProductNotFound
}

func (m *mockProductRepository) List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	m.lastFilter = filter
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*domproduct.Product
	for id := int64(1); id <= int64(len(m.products)); id++ {
		p := m.products[id]
		if filter.HasCategory() && p.Category != filter.Category {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (m *mockProductRepository) ListFirst(ctx context.Context, limit int) ([]*domproduct.Product, error) {
	m.lastLimit = limit
	var result []*domproduct.Product
	for id := int64(1); id <= int64(len(m.products)) && len(result) < limit; id++ {
		result = append(result, m.products[id])
	}
	return result, nil
}

func seedProducts(t *testing.T, repo *mockProductRepository, n int) {
	t.Helper()
	batch := make([]*domproduct.Product, 0, n)
	for i := 0; i < n; i++ {
		category := "Outdoor"
		if i%2 == 1 {
			category = "Accessories"
		}
		batch = append(batch, &domproduct.Product{Name: "Item", Price: float64(i), Category: category})
	}
	require.NoError(t, repo.CreateBatch(context.Background(), batch))
}

func TestService_GetByID(t *testing.T) {
	repo := newMockProductRepository()
	seedProducts(t, repo, 2)
	svc := NewService(repo)

	p, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), p.ID)

	_, err = svc.GetByID(context.Background(), 999999)
	require.ErrorIs(t, err, domproduct.ErrProductNotFound)
}

func TestService_ListPassesFilterThrough(t *testing.T) {
	repo := newMockProductRepository()
	seedProducts(t, repo, 4)
	svc := NewService(repo)

	filter := domproduct.ListFilter{Category: "Accessories", Sort: domproduct.SortPriceDesc}
	products, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, filter, repo.lastFilter)
}

func TestService_ListPropagatesStoreError(t *testing.T) {
	repo := newMockProductRepository()
	repo.listErr = errors.New("database is locked")
	svc := NewService(repo)

	_, err := svc.List(context.Background(), domproduct.ListFilter{})
	require.EqualError(t, err, "database is locked")
}

func TestService_Featured(t *testing.T) {
	for _, total := range []int{0, 2, 3, 8} {
		repo := newMockProductRepository()
		seedProducts(t, repo, total)
		svc := NewService(repo)

		products, err := svc.Featured(context.Background())
		require.NoError(t, err)
		require.Equal(t, FeaturedLimit, repo.lastLimit)
		require.Len(t, products, min(FeaturedLimit, total))
	}
}
