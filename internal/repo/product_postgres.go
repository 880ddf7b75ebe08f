package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

const productColumns = `id, name, description, price, cost, stock, category, sku, image, shopify_id, monthly_sales, rating, created_at, updated_at`

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	var sku sql.NullString
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Cost, &p.Stock, &p.Category, &sku,
		&p.Image, &p.ShopifyID, &p.MonthlySales, &p.Rating, &p.CreatedAt, &p.UpdatedAt)
	p.SKU = sku.String
	return p, err
}

func (r *PostgresProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	p.ID = newID(p.ID)
	p.CreatedAt = stamp(p.CreatedAt)
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	query := `INSERT INTO products (` + productColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Description, p.Price, p.Cost, p.Stock, p.Category,
		nullString(p.SKU), p.Image, p.ShopifyID, p.MonthlySales, p.Rating, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return models.Product{}, mapPgError(err)
	}
	return p, nil
}

func (r *PostgresProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(ctx context.Context, id string) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		return models.Product{}, mapPgError(err)
	}
	return p, nil
}

func (r *PostgresProductRepository) Update(ctx context.Context, p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	query := `UPDATE products SET name = $1, description = $2, price = $3, cost = $4, stock = $5, category = $6,
		sku = $7, image = $8, shopify_id = $9, monthly_sales = $10, rating = $11, updated_at = $12
		WHERE id = $13 RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query, p.Name, p.Description, p.Price, p.Cost, p.Stock, p.Category,
		nullString(p.SKU), p.Image, p.ShopifyID, p.MonthlySales, p.Rating, p.UpdatedAt, p.ID).Scan(&p.CreatedAt)
	if err != nil {
		return models.Product{}, mapPgError(err)
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
