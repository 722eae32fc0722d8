package order

import (
	"context"
	"database/sql"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a Repository over the orders, order_items,
// products and payments tables.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// PlaceOrder runs the whole placement inside a single transaction. Stock is
// decremented with a sufficiency guard in the WHERE clause; a zero-row
// update means another order got there first, and the transaction aborts.
func (r *postgresRepo) PlaceOrder(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (customer_id, order_number, total_amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING order_id, created_at`,
		o.CustomerID, o.Number, o.TotalAmount, o.Status).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range o.Items {
		res, err := tx.ExecContext(ctx, `
			UPDATE products SET stock_qty = stock_qty - $1
			WHERE product_id = $2 AND stock_qty >= $1`,
			item.Quantity, item.ProductID)
		if err != nil {
			return fmt.Errorf("update stock: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return &InsufficientStockError{ProductID: item.ProductID}
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)`,
			o.ID, item.ProductID, item.Quantity, item.Price)
		if err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO payments (order_id, amount, payment_method, status)
		VALUES ($1, $2, 'Card', 'Success')`,
		o.ID, o.TotalAmount)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	return tx.Commit()
}
