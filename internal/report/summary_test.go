package report

import (
	"context"
	"testing"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	customers := []models.Customer{
		{Name: "Sarah", ProgressScore: 85, TotalSpent: 450},
		{Name: "Mike", ProgressScore: 92, TotalSpent: 780},
		{Name: "Emily", ProgressScore: 78, TotalSpent: 320},
	}
	partnerships := []models.Partnership{
		{Name: "NFL Players Association", Status: "Active"},
		{Name: "Corporate Wellness", Status: "Pending"},
	}
	campaigns := []models.Campaign{{Name: "Back to School", Status: "Active"}}

	s := Summarize(customers, nil, partnerships, campaigns)

	assert.Equal(t, 3, s.Customers)
	assert.Equal(t, 1550.0, s.Revenue)
	assert.Equal(t, 85, s.AvgProgress)
	assert.Equal(t, 1, s.ActivePartnerships)
	assert.Equal(t, 1, s.ActiveCampaigns)
	assert.Equal(t, "Mike", s.TopCustomers[0].Name)
	assert.Empty(t, s.TopProducts)
}

func TestSummarize_NoCustomers(t *testing.T) {
	s := Summarize(nil, nil, nil, nil)
	assert.Equal(t, 0, s.AvgProgress)
	assert.Equal(t, 0.0, s.Revenue)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$0.00", FormatMoney(0))
	assert.Equal(t, "$999.50", FormatMoney(999.5))
	assert.Equal(t, "$1,234.50", FormatMoney(1234.5))
	assert.Equal(t, "$1,234,567.89", FormatMoney(1234567.89))
	assert.Equal(t, "-$12.00", FormatMoney(-12))
}

func TestCards(t *testing.T) {
	cards := Cards(Dashboard{Stats: Stats{Revenue: 12500, Orders: 1200, Customers: 3, Products: 4}})
	assert.Equal(t, []Card{
		{Title: "Total Revenue", Value: "$12,500.00"},
		{Title: "Completed Orders", Value: "1,200"},
		{Title: "Customers", Value: "3"},
		{Title: "Products", Value: "4"},
	}, cards)
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryStore()
	_, err := store.Products().Create(ctx, models.Product{Name: "THINK", Price: 49.99})
	require.NoError(t, err)
	_, err = store.Customers().Create(ctx, models.Customer{Name: "Sarah"})
	require.NoError(t, err)
	addOrder(t, store, models.Order{Status: models.OrderCompleted, Total: 20})
	e := NewEngine(store, time.Second)

	sales, err := e.Generate(ctx, TypeSales, "json")
	require.NoError(t, err)
	assert.Equal(t, SalesReport{Revenue: 20, CompletedOrders: 1}, sales.Data)

	inventory, err := e.Generate(ctx, TypeInventory, "")
	require.NoError(t, err)
	assert.Len(t, inventory.Data, 1)

	customers, err := e.Generate(ctx, TypeCustomers, "")
	require.NoError(t, err)
	assert.Len(t, customers.Data, 1)

	_, err = e.Generate(ctx, "weather", "")
	assert.ErrorIs(t, err, ErrUnknownReport)
}
