// Package report derives dashboard figures from the current store state.
// It never writes and keeps nothing between calls.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultLimit   = 5
	DefaultTimeout = 5 * time.Second
)

// ErrComputationFailed wraps every store failure seen while building a
// report. Callers get either a full report or this error.
var ErrComputationFailed = errors.New("dashboard computation failed")

type Stats struct {
	Revenue   float64 `json:"revenue"`
	Orders    int64   `json:"orders"`
	Customers int64   `json:"customers"`
	Products  int64   `json:"products"`
}

type Dashboard struct {
	Stats        Stats                 `json:"stats"`
	RecentOrders []models.OrderView    `json:"recentOrders"`
	TopProducts  []models.ProductSales `json:"topProducts"`
}

type Counts struct {
	Orders    int64
	Customers int64
	Products  int64
}

type Engine struct {
	store   repo.Store
	timeout time.Duration
}

func NewEngine(store repo.Store, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Engine{store: store, timeout: timeout}
}

func fail(err error) error {
	return fmt.Errorf("%w: %w", ErrComputationFailed, err)
}

func limitOrDefault(n int) int {
	if n <= 0 {
		return DefaultLimit
	}
	return n
}

// roundMoney rounds to cents and converts for the JSON boundary.
func roundMoney(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// Revenue sums totals of completed orders. It is 0 when there are none.
func (e *Engine) Revenue(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	total, err := e.store.Reports().Revenue(ctx)
	if err != nil {
		return 0, fail(err)
	}
	return roundMoney(total), nil
}

// Counts returns completed orders, customers and products.
func (e *Engine) Counts(ctx context.Context) (Counts, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	c, err := e.counts(ctx)
	if err != nil {
		return Counts{}, fail(err)
	}
	return c, nil
}

func (e *Engine) counts(ctx context.Context) (Counts, error) {
	reports := e.store.Reports()
	var c Counts
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		c.Orders, err = reports.CountOrders(gctx, models.OrderCompleted)
		return err
	})
	g.Go(func() (err error) {
		c.Customers, err = reports.CountCustomers(gctx)
		return err
	})
	g.Go(func() (err error) {
		c.Products, err = reports.CountProducts(gctx)
		return err
	})
	return c, g.Wait()
}

// TopProducts returns up to n best sellers by quantity, ties broken by
// product id. n <= 0 means DefaultLimit.
func (e *Engine) TopProducts(ctx context.Context, n int) ([]models.ProductSales, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	top, err := e.store.Reports().TopProducts(ctx, limitOrDefault(n))
	if err != nil {
		return nil, fail(err)
	}
	return top, nil
}

// RecentOrders returns up to n newest orders with their customers.
func (e *Engine) RecentOrders(ctx context.Context, n int) ([]models.OrderView, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	recent, err := e.store.Reports().RecentOrders(ctx, limitOrDefault(n))
	if err != nil {
		return nil, fail(err)
	}
	return recent, nil
}

// Dashboard runs every dashboard query concurrently under one deadline.
func (e *Engine) Dashboard(ctx context.Context) (Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	reports := e.store.Reports()
	var (
		revenue decimal.Decimal
		counts  Counts
		d       Dashboard
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		revenue, err = reports.Revenue(gctx)
		return err
	})
	g.Go(func() (err error) {
		counts, err = e.counts(gctx)
		return err
	})
	g.Go(func() (err error) {
		d.RecentOrders, err = reports.RecentOrders(gctx, DefaultLimit)
		return err
	})
	g.Go(func() (err error) {
		d.TopProducts, err = reports.TopProducts(gctx, DefaultLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, fail(err)
	}
	if err := ctx.Err(); err != nil {
		return Dashboard{}, fail(err)
	}

	d.Stats = Stats{
		Revenue:   roundMoney(revenue),
		Orders:    counts.Orders,
		Customers: counts.Customers,
		Products:  counts.Products,
	}
	if d.RecentOrders == nil {
		d.RecentOrders = []models.OrderView{}
	}
	if d.TopProducts == nil {
		d.TopProducts = []models.ProductSales{}
	}
	return d, nil
}
