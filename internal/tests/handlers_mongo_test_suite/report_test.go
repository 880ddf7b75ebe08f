package handlers_mongo_test_suite

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	handler "github.com/rogerio-castellano/ops-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
)

func TestRevenueCountsCompletedOnly(t *testing.T) {
	clearAllData()
	t.Cleanup(clearAllData)

	mustCreateOrder(models.Order{Status: models.OrderCompleted, Total: 10})
	mustCreateOrder(models.Order{Status: models.OrderCompleted, Total: 5})
	mustCreateOrder(models.Order{Status: models.OrderPending, Total: 100})

	revenue, err := newEngine().Revenue(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revenue != 15 {
		t.Errorf("expected revenue 15, got %v", revenue)
	}

	c, err := newEngine().Counts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Orders != 2 {
		t.Errorf("expected 2 completed orders, got %d", c.Orders)
	}
}

func TestRevenueEmptyIsZero(t *testing.T) {
	clearAllData()

	revenue, err := newEngine().Revenue(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revenue != 0 {
		t.Errorf("expected 0 on an empty store, got %v", revenue)
	}
}

func TestTopProductsTieBreak(t *testing.T) {
	clearAllData()
	t.Cleanup(clearAllData)

	for _, id := range []string{"A", "B", "C"} {
		mustCreateProduct(models.Product{ID: id, Name: "Product " + id, Price: 10})
	}
	mustCreateOrder(models.Order{Items: []models.LineItem{{ProductID: "A", Quantity: 3}, {ProductID: "C", Quantity: 2}}})
	mustCreateOrder(models.Order{Items: []models.LineItem{{ProductID: "C", Quantity: 3}}})
	mustCreateOrder(models.Order{Items: []models.LineItem{{ProductID: "B", Quantity: 5}}})
	mustCreateOrder(models.Order{Items: []models.LineItem{{ProductID: "gone", Quantity: 1}}})

	for rep := 0; rep < 3; rep++ {
		top, err := newEngine().TopProducts(context.Background(), 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(top) != 2 {
			t.Fatalf("expected 2 products, got %d", len(top))
		}
		want := []models.ProductSales{
			{ProductID: "B", TotalSold: 5, Name: "Product B", Price: 10},
			{ProductID: "C", TotalSold: 5, Name: "Product C", Price: 10},
		}
		for i := range want {
			if top[i] != want[i] {
				t.Errorf("position %d: expected %+v, got %+v", i, want[i], top[i])
			}
		}
	}

	all, err := newEngine().TopProducts(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := all[len(all)-1]
	if last.ProductID != "gone" || last.Name != "" || last.Price != 0 {
		t.Errorf("a deleted product should keep its id with empty metadata, got %+v", last)
	}
}

func TestRecentOrdersWithDeletedCustomer(t *testing.T) {
	clearAllData()
	t.Cleanup(clearAllData)
	ctx := context.Background()
	base := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	kept, err := store.Customers().Create(ctx, models.Customer{Name: "Sarah Johnson", Email: "sarah@email.com"})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	gone, err := store.Customers().Create(ctx, models.Customer{Name: "Emily Davis", Email: "emily@email.com"})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	for i := 0; i < 6; i++ {
		customer := kept.ID
		if i == 5 {
			customer = gone.ID
		}
		mustCreateOrder(models.Order{CustomerID: customer, Status: models.OrderCompleted, Total: 1, CreatedAt: base.Add(time.Duration(i) * time.Hour)})
	}
	if err := store.Customers().Delete(ctx, gone.ID); err != nil {
		t.Fatalf("delete customer: %v", err)
	}

	recent, err := newEngine().RecentOrders(ctx, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("expected 5 orders, got %d", len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if !recent[i-1].CreatedAt.After(recent[i].CreatedAt) {
			t.Errorf("orders not strictly descending at %d", i)
		}
	}
	if recent[0].CustomerID != gone.ID || recent[0].Customer != nil {
		t.Errorf("newest order should keep its deleted customer's id without a customer, got %+v", recent[0])
	}
	if recent[1].Customer == nil || recent[1].Customer.Name != "Sarah Johnson" {
		t.Errorf("expected the customer to be attached, got %+v", recent[1].Customer)
	}
}

func TestMissingDocumentIsNotFound(t *testing.T) {
	clearAllData()

	if _, err := store.Products().GetByID(context.Background(), "nope"); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	w := authed(newRouter(), http.MethodGet, "/api/orders/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestCreateProductHandler_DuplicateSKU(t *testing.T) {
	clearAllData()
	t.Cleanup(clearAllData)
	r := newRouter()

	tests := []struct {
		name       string
		payload    handler.ProductRequest
		expectCode int
	}{
		{"First SKU", handler.ProductRequest{Name: "THINK", Price: 49.99, SKU: "THINK-001"}, http.StatusCreated},
		{"Same SKU", handler.ProductRequest{Name: "THINK copy", Price: 49.99, SKU: "THINK-001"}, http.StatusBadRequest},
		{"No SKU", handler.ProductRequest{Name: "Sample", Price: 1}, http.StatusCreated},
		{"No SKU again", handler.ProductRequest{Name: "Sample 2", Price: 1}, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := authed(r, http.MethodPost, "/api/products", tt.payload)
			if w.Code != tt.expectCode {
				t.Errorf("expected status %d, got %d: %s", tt.expectCode, w.Code, w.Body.String())
			}
		})
	}
}
