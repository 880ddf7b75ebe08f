package repo

import (
	"cmp"
	"context"
	"slices"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

type InMemoryReportRepository struct {
	s *MemoryStore
}

func (r *InMemoryReportRepository) Revenue(ctx context.Context) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	total := decimal.Zero
	for _, o := range r.s.orders {
		if o.Status == models.OrderCompleted {
			total = total.Add(decimal.NewFromFloat(o.Total))
		}
	}
	return total, ctx.Err()
}

// CountOrders counts orders with the given status, or all orders when status
// is empty.
func (r *InMemoryReportRepository) CountOrders(ctx context.Context, status string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, o := range r.s.orders {
		if status == "" || o.Status == status {
			n++
		}
	}
	return n, ctx.Err()
}

func (r *InMemoryReportRepository) CountCustomers(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.customers)), ctx.Err()
}

func (r *InMemoryReportRepository) CountProducts(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.products)), ctx.Err()
}

func (r *InMemoryReportRepository) TopProducts(ctx context.Context, n int) ([]models.ProductSales, error) {
	if n <= 0 {
		return []models.ProductSales{}, nil
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sold := map[string]int{}
	for _, o := range r.s.orders {
		for _, item := range o.Items {
			sold[item.ProductID] += item.Quantity
		}
	}

	out := make([]models.ProductSales, 0, len(sold))
	for id, qty := range sold {
		out = append(out, models.ProductSales{ProductID: id, TotalSold: qty})
	}
	slices.SortFunc(out, func(a, b models.ProductSales) int {
		if c := cmp.Compare(b.TotalSold, a.TotalSold); c != 0 {
			return c
		}
		return cmp.Compare(a.ProductID, b.ProductID)
	})
	if len(out) > n {
		out = out[:n]
	}
	for i := range out {
		if p, ok := r.s.products[out[i].ProductID]; ok {
			out[i].Name = p.Name
			out[i].Price = p.Price
		}
	}
	return out, ctx.Err()
}

func (r *InMemoryReportRepository) RecentOrders(ctx context.Context, n int) ([]models.OrderView, error) {
	if n <= 0 {
		return []models.OrderView{}, nil
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	orders := r.s.allOrders()
	if len(orders) > n {
		orders = orders[:n]
	}
	out := make([]models.OrderView, len(orders))
	for i, o := range orders {
		out[i] = models.OrderView{Order: o}
		if c, ok := r.s.customers[o.CustomerID]; ok {
			c = cloneCustomer(c)
			out[i].Customer = &c
		}
	}
	return out, ctx.Err()
}
