package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/events"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	orders    repo.OrderRepository
	customers repo.CustomerRepository
	products  repo.ProductRepository
	events    events.Publisher
}

func NewOrderService(store repo.Store, pub events.Publisher) *OrderService {
	return &OrderService{
		orders:    store.Orders(),
		customers: store.Customers(),
		products:  store.Products(),
		events:    pub,
	}
}

func validateOrder(o models.Order) error {
	var v ValidationErrors
	if o.CustomerID == "" {
		v.add("customerId", "Customer is required")
	}
	if len(o.Items) == 0 {
		v.add("products", "Order must contain at least one product")
	}
	for i, item := range o.Items {
		if item.ProductID == "" {
			v.add(fmt.Sprintf("products[%d].productId", i), "Product is required")
		}
		if item.Quantity <= 0 {
			v.add(fmt.Sprintf("products[%d].quantity", i), "Quantity must be greater than zero")
		}
		if item.Price < 0 {
			v.add(fmt.Sprintf("products[%d].price", i), "Price cannot be negative")
		}
	}
	if o.Status != "" && !models.ValidOrderStatus(o.Status) {
		v.add("status", "Status %q is not one of %v", o.Status, models.OrderStatuses)
	}
	return v.err()
}

// prepare checks references and fills in prices and the total. A line item
// without a price takes the product's current price.
func (s *OrderService) prepare(ctx context.Context, o models.Order) (models.Order, error) {
	if err := validateOrder(o); err != nil {
		return models.Order{}, err
	}
	if _, err := s.customers.GetByID(ctx, o.CustomerID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.Order{}, fmt.Errorf("%w: %s", ErrCustomerNotFound, o.CustomerID)
		}
		return models.Order{}, err
	}

	total := decimal.Zero
	items := slices.Clone(o.Items)
	for i, item := range items {
		p, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return models.Order{}, fmt.Errorf("%w: %s", ErrProductNotFound, item.ProductID)
			}
			return models.Order{}, err
		}
		if item.Price == 0 {
			items[i].Price = p.Price
		}
		line := decimal.NewFromFloat(items[i].Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	o.Items = items
	o.Total, _ = total.Round(2).Float64()
	if o.Status == "" {
		o.Status = models.OrderPending
	}
	return o, nil
}

// List returns every order newest first with its customer attached.
func (s *OrderService) List(ctx context.Context) ([]models.OrderView, error) {
	orders, err := s.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customers.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}
	out := make([]models.OrderView, len(orders))
	for i, o := range orders {
		out[i] = models.OrderView{Order: o}
		if c, ok := byID[o.CustomerID]; ok {
			out[i].Customer = &c
		}
	}
	return out, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (models.OrderView, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return models.OrderView{}, err
	}
	view := models.OrderView{Order: o}
	c, err := s.customers.GetByID(ctx, o.CustomerID)
	switch {
	case err == nil:
		view.Customer = &c
	case !errors.Is(err, repo.ErrNotFound):
		return models.OrderView{}, err
	}
	return view, nil
}

func (s *OrderService) Create(ctx context.Context, o models.Order) (models.Order, error) {
	o, err := s.prepare(ctx, o)
	if err != nil {
		return models.Order{}, err
	}
	o.ID = ""
	created, err := s.orders.Create(ctx, o)
	if err != nil {
		return models.Order{}, err
	}
	s.reconcile(ctx, created.CustomerID)
	publish(ctx, s.events, events.New(events.OrderCreated, created.ID, created))
	return created, nil
}

// Update replaces the order with id. When the customer changes both the old
// and the new customer are reconciled.
func (s *OrderService) Update(ctx context.Context, id string, o models.Order) (models.Order, error) {
	existing, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	o, err = s.prepare(ctx, o)
	if err != nil {
		return models.Order{}, err
	}
	o.ID = id
	o.UpdatedAt = time.Now().UTC()
	updated, err := s.orders.Update(ctx, o)
	if err != nil {
		return models.Order{}, err
	}
	s.reconcile(ctx, existing.CustomerID, updated.CustomerID)
	publish(ctx, s.events, events.New(events.OrderUpdated, updated.ID, updated))
	return updated, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	existing, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	s.reconcile(ctx, existing.CustomerID)
	publish(ctx, s.events, events.New(events.OrderDeleted, id, nil))
	return nil
}

// Aggregates are the customer fields derived from their orders. Only
// completed orders count towards TotalSpent.
type Aggregates struct {
	TotalSpent float64
	Orders     int
	LastOrder  *time.Time
}

func Aggregate(orders []models.Order) Aggregates {
	var a Aggregates
	spent := decimal.Zero
	for _, o := range orders {
		a.Orders++
		if o.Status == models.OrderCompleted {
			spent = spent.Add(decimal.NewFromFloat(o.Total))
		}
		if a.LastOrder == nil || o.CreatedAt.After(*a.LastOrder) {
			t := o.CreatedAt
			a.LastOrder = &t
		}
	}
	a.TotalSpent, _ = spent.Round(2).Float64()
	return a
}

// Reconcile recomputes the order aggregates of one customer. A customer that
// no longer exists is skipped.
func (s *OrderService) Reconcile(ctx context.Context, customerID string) error {
	unlock := lockCustomer(customerID)
	defer unlock()

	c, err := s.customers.GetByID(ctx, customerID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	orders, err := s.orders.ListByCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	a := Aggregate(orders)
	c.TotalSpent, c.Orders, c.LastOrder = a.TotalSpent, a.Orders, a.LastOrder
	c.UpdatedAt = time.Now().UTC()
	if _, err := s.customers.Update(ctx, c); err != nil && !errors.Is(err, repo.ErrNotFound) {
		return err
	}
	return nil
}

func (s *OrderService) reconcile(ctx context.Context, customerIDs ...string) {
	for _, id := range slices.Compact(customerIDs) {
		if err := s.Reconcile(ctx, id); err != nil {
			log.Printf("⚠️ failed to reconcile customer %s: %v", id, err)
		}
	}
}
