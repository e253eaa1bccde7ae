package order

import (
	"context"
	"database/sql"
)

type Repository interface {
	CreateOrderTx(ctx context.Context, o *Order) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateOrderTx persists the order header and all of its items as one
// transaction. Any failure rolls the whole write back, so no partial order
// ever survives.
func (r *repository) CreateOrderTx(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (order_id, order_date, total_amount, status)
		VALUES ($1, $2, $3, $4)
	`,
		o.ID,
		o.Date,
		o.Total,
		o.Status,
	)
	if err != nil {
		return err
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)
		`,
			o.ID,
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.UnitPrice,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
