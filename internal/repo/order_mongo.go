package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

type MongoOrderRepository struct {
	col mongoCollection[models.Order]
}

func (r *MongoOrderRepository) Create(ctx context.Context, o models.Order) (models.Order, error) {
	o.ID = newID(o.ID)
	o.CreatedAt = stamp(o.CreatedAt)
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = o.CreatedAt
	}
	if o.Items == nil {
		o.Items = []models.LineItem{}
	}
	if err := r.col.insert(ctx, o); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

func (r *MongoOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	return r.col.find(ctx, bson.M{})
}

func (r *MongoOrderRepository) ListByCustomer(ctx context.Context, customerID string) ([]models.Order, error) {
	return r.col.find(ctx, bson.M{"customerId": customerID})
}

func (r *MongoOrderRepository) GetByID(ctx context.Context, id string) (models.Order, error) {
	return r.col.findByID(ctx, id)
}

func (r *MongoOrderRepository) Update(ctx context.Context, o models.Order) (models.Order, error) {
	existing, err := r.col.findByID(ctx, o.ID)
	if err != nil {
		return models.Order{}, err
	}
	o.CreatedAt = existing.CreatedAt
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = time.Now().UTC()
	}
	if o.Items == nil {
		o.Items = []models.LineItem{}
	}
	if err := r.col.replace(ctx, o.ID, o); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

func (r *MongoOrderRepository) Delete(ctx context.Context, id string) error {
	return r.col.delete(ctx, id)
}
