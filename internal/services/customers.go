package services

import (
	"context"
	"strings"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/events"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
)

type CustomerService struct {
	customers repo.CustomerRepository
	orders    repo.OrderRepository
	events    events.Publisher
}

func NewCustomerService(store repo.Store, pub events.Publisher) *CustomerService {
	return &CustomerService{customers: store.Customers(), orders: store.Orders(), events: pub}
}

func ValidateCustomer(c models.Customer) error {
	var v ValidationErrors
	if strings.TrimSpace(c.Name) == "" {
		v.add("name", "Name is required")
	}
	switch {
	case strings.TrimSpace(c.Email) == "":
		v.add("email", "Email is required")
	case !validEmail(c.Email):
		v.add("email", "Email %q is not valid", c.Email)
	}
	if c.ProgressScore < 0 || c.ProgressScore > 100 {
		v.add("progressScore", "Progress score must be between 0 and 100")
	}
	return v.err()
}

func normalizeCustomer(c models.Customer) models.Customer {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	if c.Status == "" {
		c.Status = models.CustomerActive
	}
	return c
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.customers.GetAll(ctx)
}

func (s *CustomerService) Get(ctx context.Context, id string) (models.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// Create stores a new customer. Order aggregates start at zero whatever the
// client sent.
func (s *CustomerService) Create(ctx context.Context, c models.Customer) (models.Customer, error) {
	c = normalizeCustomer(c)
	if err := ValidateCustomer(c); err != nil {
		return models.Customer{}, err
	}
	c.ID = ""
	c.TotalSpent, c.Orders, c.LastOrder = 0, 0, nil
	created, err := s.customers.Create(ctx, c)
	if err != nil {
		return models.Customer{}, err
	}
	publish(ctx, s.events, events.New(events.CustomerCreated, created.ID, created))
	return created, nil
}

// Update replaces the editable fields. The order aggregates are recomputed
// from the customer's orders, never taken from c.
func (s *CustomerService) Update(ctx context.Context, id string, c models.Customer) (models.Customer, error) {
	c = normalizeCustomer(c)
	if err := ValidateCustomer(c); err != nil {
		return models.Customer{}, err
	}
	unlock := lockCustomer(id)
	defer unlock()

	if _, err := s.customers.GetByID(ctx, id); err != nil {
		return models.Customer{}, err
	}
	orders, err := s.orders.ListByCustomer(ctx, id)
	if err != nil {
		return models.Customer{}, err
	}
	a := Aggregate(orders)
	c.ID = id
	c.TotalSpent, c.Orders, c.LastOrder = a.TotalSpent, a.Orders, a.LastOrder
	c.UpdatedAt = time.Now().UTC()
	updated, err := s.customers.Update(ctx, c)
	if err != nil {
		return models.Customer{}, err
	}
	publish(ctx, s.events, events.New(events.CustomerUpdated, updated.ID, updated))
	return updated, nil
}

// Delete removes the customer only. Their orders are kept.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.events, events.New(events.CustomerDeleted, id, nil))
	return nil
}
