package repo

import (
	"context"
	"strings"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

type InMemoryUserRepository struct {
	s *MemoryStore
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, user := range r.s.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (r *InMemoryUserRepository) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, user := range r.s.users {
		if strings.EqualFold(user.Email, u.Email) {
			return models.User{}, ErrDuplicatedValueUnique
		}
	}

	u.ID = newID(u.ID)
	u.CreatedAt = stamp(u.CreatedAt)
	r.s.users[u.ID] = u
	return u, nil
}
