package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	s *MemoryStore
}

func (r *InMemoryProductRepository) skuTaken(p models.Product) bool {
	if p.SKU == "" {
		return false
	}
	for _, other := range r.s.products {
		if other.ID != p.ID && other.SKU == p.SKU {
			return true
		}
	}
	return false
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = newID(p.ID)
	if _, exists := r.s.products[p.ID]; exists || r.skuTaken(p) {
		return models.Product{}, ErrDuplicatedValueUnique
	}
	p.CreatedAt = stamp(p.CreatedAt)
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	r.s.products[p.ID] = p
	return p, nil
}

// GetAll retrieves all products, newest first.
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.allProducts(), nil
}

func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (models.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

// Update replaces the stored product. CreatedAt is preserved.
func (r *InMemoryProductRepository) Update(ctx context.Context, p models.Product) (models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.products[p.ID]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	if r.skuTaken(p) {
		return models.Product{}, ErrDuplicatedValueUnique
	}
	p.CreatedAt = existing.CreatedAt
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	r.s.products[p.ID] = p
	return p, nil
}

func (r *InMemoryProductRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}
