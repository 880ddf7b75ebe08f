package repo

import (
	"context"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

// ReportRepository issues the read-only aggregate queries behind the
// dashboard. Every call hits the store; nothing is cached.
type ReportRepository interface {
	// Revenue is the sum of totals over completed orders.
	Revenue(ctx context.Context) (decimal.Decimal, error)
	CountOrders(ctx context.Context, status string) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	// TopProducts groups order line items by product, ordered by quantity
	// sold descending and product id ascending.
	TopProducts(ctx context.Context, n int) ([]models.ProductSales, error)
	// RecentOrders returns the n newest orders with their customers.
	RecentOrders(ctx context.Context, n int) ([]models.OrderView, error)
}
