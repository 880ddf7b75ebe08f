package repo

import (
	"context"
	"database/sql"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

type PostgresReportRepository struct {
	db *sql.DB
}

func NewPostgresReportRepository(db *sql.DB) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

func (r *PostgresReportRepository) Revenue(ctx context.Context) (decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(total), 0) FROM orders WHERE status = $1`, models.OrderCompleted).
		Scan(&total)
	return total, err
}

func (r *PostgresReportRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var n int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}

func (r *PostgresReportRepository) CountOrders(ctx context.Context, status string) (int64, error) {
	if status == "" {
		return r.count(ctx, `SELECT COUNT(*) FROM orders`)
	}
	return r.count(ctx, `SELECT COUNT(*) FROM orders WHERE status = $1`, status)
}

func (r *PostgresReportRepository) CountCustomers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM customers`)
}

func (r *PostgresReportRepository) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products`)
}

func (r *PostgresReportRepository) TopProducts(ctx context.Context, n int) ([]models.ProductSales, error) {
	if n <= 0 {
		return []models.ProductSales{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT s.product_id, s.total_sold, COALESCE(p.name, ''), COALESCE(p.price, 0)
		FROM (
			SELECT item->>'productId' AS product_id, SUM((item->>'quantity')::int) AS total_sold
			FROM orders, jsonb_array_elements(orders.items) AS item
			GROUP BY item->>'productId'
		) s
		LEFT JOIN products p ON p.id = s.product_id
		ORDER BY s.total_sold DESC, s.product_id COLLATE "C" ASC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ProductSales{}
	for rows.Next() {
		var ps models.ProductSales
		if err := rows.Scan(&ps.ProductID, &ps.TotalSold, &ps.Name, &ps.Price); err != nil {
			return nil, err
		}
		out = append(out, ps)
	}
	return out, rows.Err()
}

func (r *PostgresReportRepository) RecentOrders(ctx context.Context, n int) ([]models.OrderView, error) {
	if n <= 0 {
		return []models.OrderView{}, nil
	}
	orders, err := NewPostgresOrderRepository(r.db).queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id COLLATE "C" DESC LIMIT $1`, n)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.CustomerID)
	}
	customers, err := r.customersByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]models.OrderView, len(orders))
	for i, o := range orders {
		out[i] = models.OrderView{Order: o}
		if c, ok := customers[o.CustomerID]; ok {
			out[i].Customer = &c
		}
	}
	return out, nil
}

func (r *PostgresReportRepository) customersByID(ctx context.Context, ids []string) (map[string]models.Customer, error) {
	found := map[string]models.Customer{}
	if len(ids) == 0 {
		return found, nil
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		found[c.ID] = c
	}
	return found, rows.Err()
}
