package product

import "context"

type Repository interface {
	CreateBatch(ctx context.Context, products []*Product) error
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context, filter ListFilter) ([]*Product, error)
	// ListFirst returns up to limit products in store order.
	ListFirst(ctx context.Context, limit int) ([]*Product, error)
}
