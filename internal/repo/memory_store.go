package repo

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

// MemoryStore keeps every collection in process memory. It backs the tests
// and the desktop variant, where its contents are persisted as a snapshot.
type MemoryStore struct {
	mu           sync.RWMutex
	products     map[string]models.Product
	customers    map[string]models.Customer
	orders       map[string]models.Order
	integrations map[string]models.Integration
	users        map[string]models.User
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	s.reset()
	return s
}

func (s *MemoryStore) reset() {
	s.products = map[string]models.Product{}
	s.customers = map[string]models.Customer{}
	s.orders = map[string]models.Order{}
	s.integrations = map[string]models.Integration{}
	s.users = map[string]models.User{}
}

func (s *MemoryStore) Products() ProductRepository         { return &InMemoryProductRepository{s: s} }
func (s *MemoryStore) Customers() CustomerRepository       { return &InMemoryCustomerRepository{s: s} }
func (s *MemoryStore) Orders() OrderRepository             { return &InMemoryOrderRepository{s: s} }
func (s *MemoryStore) Integrations() IntegrationRepository { return &InMemoryIntegrationRepository{s: s} }
func (s *MemoryStore) Users() UserRepository               { return &InMemoryUserRepository{s: s} }
func (s *MemoryStore) Reports() ReportRepository           { return &InMemoryReportRepository{s: s} }

func (s *MemoryStore) Ping(ctx context.Context) error  { return ctx.Err() }
func (s *MemoryStore) Close(ctx context.Context) error { return nil }

// Clear drops all business data but keeps users.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := s.users
	s.reset()
	s.users = users
}

// Collections is a point-in-time copy of the business data.
type Collections struct {
	Products     []models.Product
	Customers    []models.Customer
	Orders       []models.Order
	Integrations []models.Integration
}

// Dump copies the business collections, newest first.
func (s *MemoryStore) Dump() Collections {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Collections{
		Products:     s.allProducts(),
		Customers:    s.allCustomers(),
		Orders:       s.allOrders(),
		Integrations: s.allIntegrations(),
	}
}

// Restore replaces the business collections with c. Records without an id
// get one.
func (s *MemoryStore) Restore(c Collections) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := s.users
	s.reset()
	s.users = users
	for _, p := range c.Products {
		p.ID = newID(p.ID)
		s.products[p.ID] = p
	}
	for _, cu := range c.Customers {
		cu.ID = newID(cu.ID)
		s.customers[cu.ID] = cloneCustomer(cu)
	}
	for _, o := range c.Orders {
		o.ID = newID(o.ID)
		s.orders[o.ID] = cloneOrder(o)
	}
	for _, i := range c.Integrations {
		i.ID = newID(i.ID)
		s.integrations[i.ID] = cloneIntegration(i)
	}
}

func newID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func stamp(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}

func cloneOrder(o models.Order) models.Order {
	o.Items = slices.Clone(o.Items)
	return o
}

func cloneCustomer(c models.Customer) models.Customer {
	if c.LastOrder != nil {
		t := *c.LastOrder
		c.LastOrder = &t
	}
	return c
}

func cloneIntegration(i models.Integration) models.Integration {
	if i.LastSync != nil {
		t := *i.LastSync
		i.LastSync = &t
	}
	if i.Settings.Shopify != nil {
		v := *i.Settings.Shopify
		i.Settings.Shopify = &v
	}
	if i.Settings.WooCommerce != nil {
		v := *i.Settings.WooCommerce
		i.Settings.WooCommerce = &v
	}
	if i.Settings.Amazon != nil {
		v := *i.Settings.Amazon
		i.Settings.Amazon = &v
	}
	return i
}

// newestFirst orders by creation time descending, then id descending.
func newestFirst[T any](items []T, created func(T) time.Time, id func(T) string) {
	slices.SortFunc(items, func(a, b T) int {
		if c := created(b).Compare(created(a)); c != 0 {
			return c
		}
		return cmp.Compare(id(b), id(a))
	})
}

func (s *MemoryStore) allProducts() []models.Product {
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	newestFirst(out, func(p models.Product) time.Time { return p.CreatedAt }, func(p models.Product) string { return p.ID })
	return out
}

func (s *MemoryStore) allCustomers() []models.Customer {
	out := make([]models.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, cloneCustomer(c))
	}
	newestFirst(out, func(c models.Customer) time.Time { return c.CreatedAt }, func(c models.Customer) string { return c.ID })
	return out
}

func (s *MemoryStore) allOrders() []models.Order {
	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, cloneOrder(o))
	}
	newestFirst(out, func(o models.Order) time.Time { return o.CreatedAt }, func(o models.Order) string { return o.ID })
	return out
}

func (s *MemoryStore) allIntegrations() []models.Integration {
	out := make([]models.Integration, 0, len(s.integrations))
	for _, i := range s.integrations {
		out = append(out, cloneIntegration(i))
	}
	newestFirst(out, func(i models.Integration) time.Time { return i.CreatedAt }, func(i models.Integration) string { return i.ID })
	return out
}
