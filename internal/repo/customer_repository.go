package repo

import (
	"context"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer models.Customer) (models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id string) (models.Customer, error)
	Update(ctx context.Context, customer models.Customer) (models.Customer, error)
	// Delete removes only the customer; their orders are kept.
	Delete(ctx context.Context, id string) error
}
