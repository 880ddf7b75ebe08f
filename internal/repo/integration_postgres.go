package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

const integrationColumns = `id, platform, api_key, api_secret, store_url, is_active, last_sync, settings, created_at`

type PostgresIntegrationRepository struct {
	db *sql.DB
}

func NewPostgresIntegrationRepository(db *sql.DB) *PostgresIntegrationRepository {
	return &PostgresIntegrationRepository{db: db}
}

func scanIntegration(row rowScanner) (models.Integration, error) {
	var i models.Integration
	var lastSync sql.NullTime
	var settings []byte
	err := row.Scan(&i.ID, &i.Platform, &i.APIKey, &i.APISecret, &i.StoreURL, &i.IsActive, &lastSync, &settings, &i.CreatedAt)
	if err != nil {
		return i, err
	}
	i.LastSync = timePtr(lastSync)
	if err := json.Unmarshal(settings, &i.Settings); err != nil {
		return i, fmt.Errorf("failed to decode integration settings: %w", err)
	}
	return i, nil
}

func (r *PostgresIntegrationRepository) Create(ctx context.Context, i models.Integration) (models.Integration, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	settings, err := json.Marshal(i.Settings)
	if err != nil {
		return models.Integration{}, err
	}
	i.ID = newID(i.ID)
	i.CreatedAt = stamp(i.CreatedAt)
	query := `INSERT INTO integrations (` + integrationColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.db.ExecContext(ctx, query, i.ID, i.Platform, i.APIKey, i.APISecret, i.StoreURL, i.IsActive,
		nullTime(i.LastSync), settings, i.CreatedAt)
	if err != nil {
		return models.Integration{}, mapPgError(err)
	}
	return i, nil
}

func (r *PostgresIntegrationRepository) GetAll(ctx context.Context) ([]models.Integration, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT `+integrationColumns+` FROM integrations ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Integration{}
	for rows.Next() {
		i, err := scanIntegration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *PostgresIntegrationRepository) GetByID(ctx context.Context, id string) (models.Integration, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	i, err := scanIntegration(r.db.QueryRowContext(ctx, `SELECT `+integrationColumns+` FROM integrations WHERE id = $1`, id))
	if err != nil {
		return models.Integration{}, mapPgError(err)
	}
	return i, nil
}

func (r *PostgresIntegrationRepository) Update(ctx context.Context, i models.Integration) (models.Integration, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	settings, err := json.Marshal(i.Settings)
	if err != nil {
		return models.Integration{}, err
	}
	query := `UPDATE integrations SET platform = $1, api_key = $2, api_secret = $3, store_url = $4, is_active = $5,
		last_sync = $6, settings = $7 WHERE id = $8 RETURNING created_at`
	err = r.db.QueryRowContext(ctx, query, i.Platform, i.APIKey, i.APISecret, i.StoreURL, i.IsActive,
		nullTime(i.LastSync), settings, i.ID).Scan(&i.CreatedAt)
	if err != nil {
		return models.Integration{}, mapPgError(err)
	}
	return i, nil
}

func (r *PostgresIntegrationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM integrations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
