package repo

import (
	"context"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

type InMemoryIntegrationRepository struct {
	s *MemoryStore
}

func (r *InMemoryIntegrationRepository) Create(ctx context.Context, i models.Integration) (models.Integration, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i.ID = newID(i.ID)
	if _, exists := r.s.integrations[i.ID]; exists {
		return models.Integration{}, ErrDuplicatedValueUnique
	}
	i.CreatedAt = stamp(i.CreatedAt)
	r.s.integrations[i.ID] = cloneIntegration(i)
	return cloneIntegration(i), nil
}

func (r *InMemoryIntegrationRepository) GetAll(ctx context.Context) ([]models.Integration, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.allIntegrations(), nil
}

func (r *InMemoryIntegrationRepository) GetByID(ctx context.Context, id string) (models.Integration, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i, ok := r.s.integrations[id]
	if !ok {
		return models.Integration{}, ErrNotFound
	}
	return cloneIntegration(i), nil
}

func (r *InMemoryIntegrationRepository) Update(ctx context.Context, i models.Integration) (models.Integration, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.integrations[i.ID]
	if !ok {
		return models.Integration{}, ErrNotFound
	}
	i.CreatedAt = existing.CreatedAt
	r.s.integrations[i.ID] = cloneIntegration(i)
	return cloneIntegration(i), nil
}

func (r *InMemoryIntegrationRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.integrations[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.integrations, id)
	return nil
}
