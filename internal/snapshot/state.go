package snapshot

import (
	"slices"
	"sync"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
)

// State is the desktop working set: the business collections live in a
// memory store, the outreach lists only exist here.
type State struct {
	mu           sync.RWMutex
	store        *repo.MemoryStore
	partnerships []models.Partnership
	campaigns    []models.Campaign
}

func NewState(store *repo.MemoryStore) *State {
	return &State{store: store}
}

func (st *State) Store() *repo.MemoryStore { return st.store }

func (st *State) Snapshot() Snapshot {
	st.mu.RLock()
	defer st.mu.RUnlock()

	c := st.store.Dump()
	return Snapshot{
		Customers:    c.Customers,
		Products:     c.Products,
		Orders:       c.Orders,
		Integrations: c.Integrations,
		Partnerships: orEmpty(slices.Clone(st.partnerships)),
		Campaigns:    orEmpty(slices.Clone(st.campaigns)),
	}
}

// Replace swaps the whole working set for s.
func (st *State) Replace(s Snapshot) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.store.Restore(repo.Collections{
		Products:     s.Products,
		Customers:    s.Customers,
		Orders:       s.Orders,
		Integrations: s.Integrations,
	})
	st.partnerships = slices.Clone(s.Partnerships)
	st.campaigns = slices.Clone(s.Campaigns)
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
