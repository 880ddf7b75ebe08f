package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

type InMemoryCustomerRepository struct {
	s *MemoryStore
}

func (r *InMemoryCustomerRepository) Create(ctx context.Context, c models.Customer) (models.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c.ID = newID(c.ID)
	if _, exists := r.s.customers[c.ID]; exists {
		return models.Customer{}, ErrDuplicatedValueUnique
	}
	c.CreatedAt = stamp(c.CreatedAt)
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	c = cloneCustomer(c)
	r.s.customers[c.ID] = c
	return cloneCustomer(c), nil
}

func (r *InMemoryCustomerRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.allCustomers(), nil
}

func (r *InMemoryCustomerRepository) GetByID(ctx context.Context, id string) (models.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.customers[id]
	if !ok {
		return models.Customer{}, ErrNotFound
	}
	return cloneCustomer(c), nil
}

func (r *InMemoryCustomerRepository) Update(ctx context.Context, c models.Customer) (models.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.customers[c.ID]
	if !ok {
		return models.Customer{}, ErrNotFound
	}
	c.CreatedAt = existing.CreatedAt
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = time.Now().UTC()
	}
	c = cloneCustomer(c)
	r.s.customers[c.ID] = c
	return cloneCustomer(c), nil
}

func (r *InMemoryCustomerRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.customers[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.customers, id)
	return nil
}
