package db

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		flavor TEXT,
		img TEXT,
		category_id TEXT REFERENCES categories(id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_id UUID PRIMARY KEY,
		order_date TIMESTAMPTZ NOT NULL,
		total_amount NUMERIC(10,2) NOT NULL,
		status TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		item_id BIGSERIAL PRIMARY KEY,
		order_id UUID REFERENCES orders(order_id),
		product_id TEXT,
		product_name TEXT,
		quantity INT,
		unit_price NUMERIC(10,2)
	)`,
}

var seedCategories = [][]any{
	{"cat-bars", "Bars"},
	{"cat-truffles", "Truffles"},
	{"cat-pralines", "Pralines"},
}

var seedProducts = [][]any{
	{"prod-001", "70% Dark Cacao Bar", "8.00", "Intense, deep, pure", "https://images.pexels.com/photos/6167328/pexels-photo-6167328.jpeg", "cat-bars"},
	{"prod-002", "Sea Salt Dark Squares", "12.00", "Dark chocolate, sea salt flakes", "https://images.unsplash.com/photo-1504674900247-0877df9cc836", "cat-bars"},
	{"prod-003", "Espresso Milk Bar", "10.00", "Smooth milk chocolate, espresso", "https://images.unsplash.com/photo-1504674900247-0877df9cc836", "cat-bars"},
	{"prod-004", "White Raspberry Truffle", "14.00", "White chocolate, raspberry", "https://images.unsplash.com/photo-1527515637462-cff94eecc1ac", "cat-truffles"},
	{"prod-005", "Champagne Truffle", "17.00", "Milk chocolate, champagne", "https://images.pexels.com/photos/4399753/pexels-photo-4399753.jpeg", "cat-truffles"},
	{"prod-006", "Salted Caramel Praline", "16.00", "Milk chocolate, salted caramel", "https://images.pexels.com/photos/7676087/pexels-photo-7676087.jpeg", "cat-pralines"},
}

// Bootstrap creates the schema when absent and seeds the default catalog.
// Safe to run on every startup: seed inserts use ON CONFLICT DO NOTHING, so
// existing rows are left untouched.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	for _, c := range seedCategories {
		_, err := db.ExecContext(ctx, `
			INSERT INTO categories (id, name)
			VALUES ($1, $2)
			ON CONFLICT (id) DO NOTHING
		`, c...)
		if err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
	}

	for _, p := range seedProducts {
		_, err := db.ExecContext(ctx, `
			INSERT INTO products (id, name, price, flavor, img, category_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING
		`, p...)
		if err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
	}

	return nil
}
