package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

const orderColumns = `id, customer_id, items, total, status, payment_method, shipping_address, created_at, updated_at`

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func scanOrder(row rowScanner) (models.Order, error) {
	var o models.Order
	var items []byte
	err := row.Scan(&o.ID, &o.CustomerID, &items, &o.Total, &o.Status, &o.PaymentMethod, &o.ShippingAddress,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return o, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return o, fmt.Errorf("failed to decode order items: %w", err)
	}
	return o, nil
}

func encodeItems(items []models.LineItem) ([]byte, error) {
	if items == nil {
		items = []models.LineItem{}
	}
	return json.Marshal(items)
}

func (r *PostgresOrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresOrderRepository) Create(ctx context.Context, o models.Order) (models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	items, err := encodeItems(o.Items)
	if err != nil {
		return models.Order{}, err
	}
	o.ID = newID(o.ID)
	o.CreatedAt = stamp(o.CreatedAt)
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = o.CreatedAt
	}
	query := `INSERT INTO orders (` + orderColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.db.ExecContext(ctx, query, o.ID, o.CustomerID, items, o.Total, o.Status, o.PaymentMethod,
		o.ShippingAddress, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return models.Order{}, mapPgError(err)
	}
	return o, nil
}

func (r *PostgresOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	return r.queryOrders(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC`)
}

func (r *PostgresOrderRepository) ListByCustomer(ctx context.Context, customerID string) ([]models.Order, error) {
	return r.queryOrders(ctx, `SELECT `+orderColumns+` FROM orders WHERE customer_id = $1 ORDER BY created_at DESC, id DESC`, customerID)
}

func (r *PostgresOrderRepository) GetByID(ctx context.Context, id string) (models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	o, err := scanOrder(r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return models.Order{}, mapPgError(err)
	}
	return o, nil
}

func (r *PostgresOrderRepository) Update(ctx context.Context, o models.Order) (models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	items, err := encodeItems(o.Items)
	if err != nil {
		return models.Order{}, err
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = time.Now().UTC()
	}
	query := `UPDATE orders SET customer_id = $1, items = $2, total = $3, status = $4, payment_method = $5,
		shipping_address = $6, updated_at = $7 WHERE id = $8 RETURNING created_at`
	err = r.db.QueryRowContext(ctx, query, o.CustomerID, items, o.Total, o.Status, o.PaymentMethod,
		o.ShippingAddress, o.UpdatedAt, o.ID).Scan(&o.CreatedAt)
	if err != nil {
		return models.Order{}, mapPgError(err)
	}
	return o, nil
}

func (r *PostgresOrderRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
