package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

type MongoCustomerRepository struct {
	col mongoCollection[models.Customer]
}

func (r *MongoCustomerRepository) Create(ctx context.Context, c models.Customer) (models.Customer, error) {
	c.ID = newID(c.ID)
	c.CreatedAt = stamp(c.CreatedAt)
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	if err := r.col.insert(ctx, c); err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

func (r *MongoCustomerRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	return r.col.find(ctx, bson.M{})
}

func (r *MongoCustomerRepository) GetByID(ctx context.Context, id string) (models.Customer, error) {
	return r.col.findByID(ctx, id)
}

func (r *MongoCustomerRepository) Update(ctx context.Context, c models.Customer) (models.Customer, error) {
	existing, err := r.col.findByID(ctx, c.ID)
	if err != nil {
		return models.Customer{}, err
	}
	c.CreatedAt = existing.CreatedAt
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = time.Now().UTC()
	}
	if err := r.col.replace(ctx, c.ID, c); err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

func (r *MongoCustomerRepository) Delete(ctx context.Context, id string) error {
	return r.col.delete(ctx, id)
}
