package repo

import (
	"context"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

type MongoIntegrationRepository struct {
	col mongoCollection[models.Integration]
}

func (r *MongoIntegrationRepository) Create(ctx context.Context, i models.Integration) (models.Integration, error) {
	i.ID = newID(i.ID)
	i.CreatedAt = stamp(i.CreatedAt)
	if err := r.col.insert(ctx, i); err != nil {
		return models.Integration{}, err
	}
	return i, nil
}

func (r *MongoIntegrationRepository) GetAll(ctx context.Context) ([]models.Integration, error) {
	return r.col.find(ctx, bson.M{})
}

func (r *MongoIntegrationRepository) GetByID(ctx context.Context, id string) (models.Integration, error) {
	return r.col.findByID(ctx, id)
}

func (r *MongoIntegrationRepository) Update(ctx context.Context, i models.Integration) (models.Integration, error) {
	existing, err := r.col.findByID(ctx, i.ID)
	if err != nil {
		return models.Integration{}, err
	}
	i.CreatedAt = existing.CreatedAt
	if err := r.col.replace(ctx, i.ID, i); err != nil {
		return models.Integration{}, err
	}
	return i, nil
}

func (r *MongoIntegrationRepository) Delete(ctx context.Context, id string) error {
	return r.col.delete(ctx, id)
}
