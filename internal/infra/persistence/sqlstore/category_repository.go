package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	domcategory "example.com/catalog-api/internal/domain/category"
)

type CategoryRepository struct {
	store *Store
	log   logrus.FieldLogger
}

func NewCategoryRepository(store *Store) *CategoryRepository {
	return &CategoryRepository{store: store, log: store.log.WithField("repo", "categories")}
}

func (r *CategoryRepository) CreateBatch(ctx context.Context, categories []*domcategory.Category) error {
	d := r.store.dialect
	return r.store.withTx(ctx, func(tx *sql.Tx) error {
		for _, c := range categories {
			id, err := d.insertID(ctx, tx, `INSERT INTO categories (name, count) VALUES (?, ?)`, c.Name, c.Count)
			if err != nil {
				return fmt.Errorf("insert category %q: %w", c.Name, err)
			}
			c.ID = id
		}
		r.log.WithField("rows", len(categories)).Debug("categories inserted")
		return nil
	})
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	return r.store.count(ctx, "categories")
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domcategory.Category, error) {
	rows, err := r.store.db.QueryContext(ctx, `SELECT id, name, count FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []*domcategory.Category{}
	for rows.Next() {
		var c domcategory.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Count); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
