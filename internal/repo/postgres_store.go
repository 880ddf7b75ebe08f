package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const queryTimeout = 3 * time.Second

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	price         NUMERIC(12,2) NOT NULL,
	cost          NUMERIC(12,2) NOT NULL DEFAULT 0,
	stock         INTEGER NOT NULL DEFAULT 0,
	category      TEXT NOT NULL DEFAULT '',
	sku           TEXT,
	image         TEXT NOT NULL DEFAULT '',
	shopify_id    TEXT NOT NULL DEFAULT '',
	monthly_sales INTEGER NOT NULL DEFAULT 0,
	rating        DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS products_sku_key ON products (sku) WHERE sku IS NOT NULL;

CREATE TABLE IF NOT EXISTS customers (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	email          TEXT NOT NULL,
	phone          TEXT NOT NULL DEFAULT '',
	type           TEXT NOT NULL DEFAULT '',
	cognitive_goal TEXT NOT NULL DEFAULT '',
	progress_score INTEGER NOT NULL DEFAULT 0,
	total_spent    NUMERIC(12,2) NOT NULL DEFAULT 0,
	orders         INTEGER NOT NULL DEFAULT 0,
	last_order     TIMESTAMPTZ,
	status         TEXT NOT NULL DEFAULT 'active',
	notes          TEXT NOT NULL DEFAULT '',
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL
);

-- customer_id carries no foreign key: deleting a customer keeps their orders.
CREATE TABLE IF NOT EXISTS orders (
	id               TEXT PRIMARY KEY,
	customer_id      TEXT NOT NULL,
	items            JSONB NOT NULL DEFAULT '[]',
	total            NUMERIC(12,2) NOT NULL,
	status           TEXT NOT NULL DEFAULT 'pending',
	payment_method   TEXT NOT NULL DEFAULT '',
	shipping_address TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMPTZ NOT NULL,
	updated_at       TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS orders_created_at_idx ON orders (created_at DESC);
CREATE INDEX IF NOT EXISTS orders_customer_id_idx ON orders (customer_id);

CREATE TABLE IF NOT EXISTS integrations (
	id         TEXT PRIMARY KEY,
	platform   TEXT NOT NULL,
	api_key    TEXT NOT NULL DEFAULT '',
	api_secret TEXT NOT NULL DEFAULT '',
	store_url  TEXT NOT NULL DEFAULT '',
	is_active  BOOLEAN NOT NULL DEFAULT FALSE,
	last_sync  TIMESTAMPTZ,
	settings   JSONB NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name          TEXT NOT NULL DEFAULT '',
	role          TEXT NOT NULL DEFAULT 'admin',
	created_at    TIMESTAMPTZ NOT NULL
);
`

// PostgresStore is a Store over database/sql with the pgx driver.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an open database and creates missing tables.
func NewPostgresStore(ctx context.Context, db *sql.DB) (*PostgresStore, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) DB() *sql.DB { return s.db }

func (s *PostgresStore) Products() ProductRepository { return NewPostgresProductRepository(s.db) }
func (s *PostgresStore) Customers() CustomerRepository {
	return NewPostgresCustomerRepository(s.db)
}
func (s *PostgresStore) Orders() OrderRepository { return NewPostgresOrderRepository(s.db) }
func (s *PostgresStore) Integrations() IntegrationRepository {
	return NewPostgresIntegrationRepository(s.db)
}
func (s *PostgresStore) Users() UserRepository     { return NewPostgresUserRepository(s.db) }
func (s *PostgresStore) Reports() ReportRepository { return NewPostgresReportRepository(s.db) }

func (s *PostgresStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *PostgresStore) Close(ctx context.Context) error { return s.db.Close() }

type rowScanner interface {
	Scan(dest ...any) error
}

// mapPgError translates driver errors into repository sentinels.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %s", ErrDuplicatedValueUnique, pgErr.ConstraintName)
	}
	return err
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
