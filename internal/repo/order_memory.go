package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

type InMemoryOrderRepository struct {
	s *MemoryStore
}

func (r *InMemoryOrderRepository) Create(ctx context.Context, o models.Order) (models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o.ID = newID(o.ID)
	if _, exists := r.s.orders[o.ID]; exists {
		return models.Order{}, ErrDuplicatedValueUnique
	}
	o.CreatedAt = stamp(o.CreatedAt)
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = o.CreatedAt
	}
	r.s.orders[o.ID] = cloneOrder(o)
	return cloneOrder(o), nil
}

func (r *InMemoryOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.allOrders(), nil
}

func (r *InMemoryOrderRepository) GetByID(ctx context.Context, id string) (models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.orders[id]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	return cloneOrder(o), nil
}

func (r *InMemoryOrderRepository) ListByCustomer(ctx context.Context, customerID string) ([]models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []models.Order
	for _, o := range r.s.allOrders() {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *InMemoryOrderRepository) Update(ctx context.Context, o models.Order) (models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.orders[o.ID]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	o.CreatedAt = existing.CreatedAt
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = time.Now().UTC()
	}
	r.s.orders[o.ID] = cloneOrder(o)
	return cloneOrder(o), nil
}

func (r *InMemoryOrderRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.orders[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.orders, id)
	return nil
}
