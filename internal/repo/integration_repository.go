package repo

import (
	"context"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

type IntegrationRepository interface {
	Create(ctx context.Context, integration models.Integration) (models.Integration, error)
	GetAll(ctx context.Context) ([]models.Integration, error)
	GetByID(ctx context.Context, id string) (models.Integration, error)
	Update(ctx context.Context, integration models.Integration) (models.Integration, error)
	Delete(ctx context.Context, id string) error
}
