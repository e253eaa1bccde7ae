package catalog

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]Product, error)
	GetCategories(ctx context.Context) ([]Category, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, COALESCE(flavor, ''), COALESCE(img, ''), COALESCE(category_id, '')
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Flavor, &p.ImageURL, &p.CategoryID); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// GetByIDs returns the products matching ids, keyed by id. Ids without a
// matching row are silently omitted; callers decide whether that is an error.
func (r *repository) GetByIDs(ctx context.Context, ids []string) (map[string]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, COALESCE(flavor, ''), COALESCE(img, ''), COALESCE(category_id, '')
		FROM products
		WHERE id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make(map[string]Product, len(ids))
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Flavor, &p.ImageURL, &p.CategoryID); err != nil {
			return nil, err
		}
		products[p.ID] = p
	}

	return products, rows.Err()
}

func (r *repository) GetCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}
