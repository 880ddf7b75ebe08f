package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

const customerColumns = `id, name, email, phone, type, cognitive_goal, progress_score, total_spent, orders, last_order, status, notes, created_at, updated_at`

type PostgresCustomerRepository struct {
	db *sql.DB
}

func NewPostgresCustomerRepository(db *sql.DB) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{db: db}
}

func scanCustomer(row rowScanner) (models.Customer, error) {
	var c models.Customer
	var lastOrder sql.NullTime
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Type, &c.CognitiveGoal, &c.ProgressScore,
		&c.TotalSpent, &c.Orders, &lastOrder, &c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	c.LastOrder = timePtr(lastOrder)
	return c, err
}

func (r *PostgresCustomerRepository) Create(ctx context.Context, c models.Customer) (models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	c.ID = newID(c.ID)
	c.CreatedAt = stamp(c.CreatedAt)
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	query := `INSERT INTO customers (` + customerColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Email, c.Phone, c.Type, c.CognitiveGoal, c.ProgressScore,
		c.TotalSpent, c.Orders, nullTime(c.LastOrder), c.Status, c.Notes, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return models.Customer{}, mapPgError(err)
	}
	return c, nil
}

func (r *PostgresCustomerRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *PostgresCustomerRepository) GetByID(ctx context.Context, id string) (models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	c, err := scanCustomer(r.db.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		return models.Customer{}, mapPgError(err)
	}
	return c, nil
}

func (r *PostgresCustomerRepository) Update(ctx context.Context, c models.Customer) (models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = time.Now().UTC()
	}
	query := `UPDATE customers SET name = $1, email = $2, phone = $3, type = $4, cognitive_goal = $5,
		progress_score = $6, total_spent = $7, orders = $8, last_order = $9, status = $10, notes = $11, updated_at = $12
		WHERE id = $13 RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query, c.Name, c.Email, c.Phone, c.Type, c.CognitiveGoal, c.ProgressScore,
		c.TotalSpent, c.Orders, nullTime(c.LastOrder), c.Status, c.Notes, c.UpdatedAt, c.ID).Scan(&c.CreatedAt)
	if err != nil {
		return models.Customer{}, mapPgError(err)
	}
	return c, nil
}

func (r *PostgresCustomerRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
