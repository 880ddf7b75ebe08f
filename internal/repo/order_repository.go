package repo

import (
	"context"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

type OrderRepository interface {
	Create(ctx context.Context, order models.Order) (models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (models.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Order, error)
	Update(ctx context.Context, order models.Order) (models.Order, error)
	Delete(ctx context.Context, id string) error
}
