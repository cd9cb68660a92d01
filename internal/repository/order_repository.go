package repository

import (
	"context"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/database"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/models"
)

type OrderRepository struct {
	pool database.Pool
}

func NewOrderRepository(pool database.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// List returns all orders newest first with their line items attached.
// The admin screen renders the whole set; the storefront writes rows,
// this side only reads and flips status.
func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	const query = `
		SELECT id, user_id, customer_email, total_amount, status, address, phone, note, created_at
		FROM orders ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	idx := make(map[string]int)
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.CustomerEmail, &o.TotalAmount,
			&o.Status, &o.Address, &o.Phone, &o.Note, &o.CreatedAt); err != nil {
			return nil, err
		}
		idx[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	const itemQuery = `
		SELECT order_id, product_name, quantity, price
		FROM order_items ORDER BY order_id
	`
	itemRows, err := r.pool.Query(ctx, itemQuery)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		var it models.OrderItem
		if err := itemRows.Scan(&orderID, &it.ProductName, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		if i, ok := idx[orderID]; ok {
			orders[i].Items = append(orders[i].Items, it)
		}
	}
	return orders, itemRows.Err()
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// CountAndRevenue reports the order total and the revenue sum excluding
// cancelled orders, for the dashboard.
func (r *OrderRepository) CountAndRevenue(ctx context.Context) (int, int64, error) {
	const query = `
		SELECT COUNT(*),
		       COALESCE(SUM(total_amount) FILTER (WHERE status <> 'cancelled'), 0)
		FROM orders
	`
	var count int
	var revenue int64
	err := r.pool.QueryRow(ctx, query).Scan(&count, &revenue)
	return count, revenue, err
}
