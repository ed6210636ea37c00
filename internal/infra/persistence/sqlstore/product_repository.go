package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	domproduct "example.com/catalog-api/internal/domain/product"
)

const productColumns = `id, name, price, image, category, description, created_at`

type ProductRepository struct {
	store *Store
	log   logrus.FieldLogger
}

func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store, log: store.log.WithField("repo", "products")}
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *ProductRepository) CreateBatch(ctx context.Context, products []*domproduct.Product) error {
	d := r.store.dialect
	return r.store.withTx(ctx, func(tx *sql.Tx) error {
		for _, p := range products {
			if p.CreatedAt.IsZero() {
				p.CreatedAt = time.Now().UTC()
			}
			id, err := d.insertID(ctx, tx, `
                INSERT INTO products (name, price, image, category, description, created_at)
                VALUES (?, ?, ?, ?, ?, ?)`,
				p.Name, p.Price, p.Image, p.Category, nullString(p.Description), toMillis(p.CreatedAt))
			if err != nil {
				return fmt.Errorf("insert product %q: %w", p.Name, err)
			}
			p.ID = id
			p.CreatedAt = fromMillis(toMillis(p.CreatedAt))
		}
		r.log.WithField("rows", len(products)).Debug("products inserted")
		return nil
	})
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	return r.store.count(ctx, "products")
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	row := r.store.db.QueryRowContext(ctx,
		r.store.dialect.rebind(`SELECT `+productColumns+` FROM products WHERE id = ?`), id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domproduct.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	var args []any

	if filter.HasCategory() {
		query += ` WHERE category = ?`
		args = append(args, filter.Category)
	}
	if order := orderBy(filter.Sort); order != "" {
		query += ` ORDER BY ` + order
	}

	return r.query(ctx, query, args...)
}

func (r *ProductRepository) ListFirst(ctx context.Context, limit int) ([]*domproduct.Product, error) {
	return r.query(ctx, `SELECT `+productColumns+` FROM products LIMIT ?`, limit)
}

func orderBy(s domproduct.Sort) string {
	switch s {
	case domproduct.SortPriceAsc:
		return "price ASC"
	case domproduct.SortPriceDesc:
		return "price DESC"
	case domproduct.SortNameAsc:
		return "name ASC"
	case domproduct.SortNameDesc:
		return "name DESC"
	default:
		return ""
	}
}

func (r *ProductRepository) query(ctx context.Context, query string, args ...any) ([]*domproduct.Product, error) {
	rows, err := r.store.db.QueryContext(ctx, r.store.dialect.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []*domproduct.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(s rowScanner) (*domproduct.Product, error) {
	var (
		p           domproduct.Product
		description sql.NullString
		createdAt   int64
	)
	if err := s.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Category, &description, &createdAt); err != nil {
		return nil, err
	}
	p.Description = description.String
	p.CreatedAt = fromMillis(createdAt)
	return &p, nil
}
