package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

const (
	TypeSales     = "sales"
	TypeInventory = "inventory"
	TypeCustomers = "customers"
)

var ErrUnknownReport = errors.New("unknown report type")

type SalesReport struct {
	Revenue         float64 `json:"revenue"`
	CompletedOrders int64   `json:"completedOrders"`
}

type Generated struct {
	Type        string    `json:"type"`
	Format      string    `json:"format,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
	Data        any       `json:"reportData"`
}

// Generate builds one of the on-demand reports. Inventory and customers
// reports return the full lists.
func (e *Engine) Generate(ctx context.Context, reportType, format string) (Generated, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	out := Generated{Type: reportType, Format: format, GeneratedAt: time.Now().UTC()}
	switch reportType {
	case TypeSales:
		revenue, err := e.store.Reports().Revenue(ctx)
		if err != nil {
			return Generated{}, fail(err)
		}
		completed, err := e.store.Reports().CountOrders(ctx, models.OrderCompleted)
		if err != nil {
			return Generated{}, fail(err)
		}
		out.Data = SalesReport{Revenue: roundMoney(revenue), CompletedOrders: completed}
	case TypeInventory:
		products, err := e.store.Products().GetAll(ctx)
		if err != nil {
			return Generated{}, fail(err)
		}
		out.Data = products
	case TypeCustomers:
		customers, err := e.Customers(ctx)
		if err != nil {
			return Generated{}, err
		}
		out.Data = customers
	default:
		return Generated{}, fmt.Errorf("%w: %q", ErrUnknownReport, reportType)
	}
	return out, nil
}

// Customers lists every customer for the customers report and CSV export.
func (e *Engine) Customers(ctx context.Context) ([]models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	customers, err := e.store.Customers().GetAll(ctx)
	if err != nil {
		return nil, fail(err)
	}
	return customers, nil
}

// RankCustomers loads every customer and ranks them by field.
func (e *Engine) RankCustomers(ctx context.Context, field string, n int) ([]models.Customer, error) {
	if _, ok := customerFields[field]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRankField, field)
	}
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	customers, err := e.store.Customers().GetAll(ctx)
	if err != nil {
		return nil, fail(err)
	}
	return RankCustomers(customers, field, n)
}

func (e *Engine) RankProducts(ctx context.Context, field string, n int) ([]models.Product, error) {
	if _, ok := productFields[field]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRankField, field)
	}
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	products, err := e.store.Products().GetAll(ctx)
	if err != nil {
		return nil, fail(err)
	}
	return RankProducts(products, field, n)
}
