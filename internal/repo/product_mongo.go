package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

type MongoProductRepository struct {
	col mongoCollection[models.Product]
}

func (r *MongoProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	p.ID = newID(p.ID)
	p.CreatedAt = stamp(p.CreatedAt)
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	if err := r.col.insert(ctx, p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *MongoProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.col.find(ctx, bson.M{})
}

func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (models.Product, error) {
	return r.col.findByID(ctx, id)
}

func (r *MongoProductRepository) Update(ctx context.Context, p models.Product) (models.Product, error) {
	existing, err := r.col.findByID(ctx, p.ID)
	if err != nil {
		return models.Product{}, err
	}
	p.CreatedAt = existing.CreatedAt
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	if err := r.col.replace(ctx, p.ID, p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id string) error {
	return r.col.delete(ctx, id)
}
