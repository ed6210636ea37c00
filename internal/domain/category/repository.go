package category

import "context"

type Repository interface {
	CreateBatch(ctx context.Context, categories []*Category) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]*Category, error)
}
