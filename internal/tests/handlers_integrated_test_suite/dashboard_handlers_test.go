package handlers_integrated_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rogerio-castellano/ops-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/report"
)

func TestDashboardAgainstPostgres(t *testing.T) {
	clearAllData()
	t.Cleanup(clearAllData)
	r := newRouter()

	a := mustProduct(r, "THINK", 49.99)
	b := mustProduct(r, "Brain Water", 29.99)
	c := mustCustomer(r, "Sarah Johnson", "sarah@email.com")

	orders := []handlers.OrderRequest{
		{CustomerID: c.ID, Status: models.OrderCompleted, Products: []models.LineItem{{ProductID: a.ID, Quantity: 2}}},
		{CustomerID: c.ID, Status: models.OrderCompleted, Products: []models.LineItem{{ProductID: b.ID, Quantity: 1}}},
		{CustomerID: c.ID, Status: models.OrderPending, Products: []models.LineItem{{ProductID: b.ID, Quantity: 4}}},
	}
	for _, o := range orders {
		if w := authed(r, http.MethodPost, "/api/orders", o); w.Code != http.StatusCreated {
			t.Fatalf("create order: %d %s", w.Code, w.Body.String())
		}
	}

	w := authed(r, http.MethodGet, "/api/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var d report.Dashboard
	if err := json.NewDecoder(w.Body).Decode(&d); err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := report.Stats{Revenue: 129.97, Orders: 2, Customers: 1, Products: 2}
	if d.Stats != want {
		t.Errorf("expected %+v, got %+v", want, d.Stats)
	}
	if len(d.TopProducts) != 2 || d.TopProducts[0].ProductID != b.ID || d.TopProducts[0].TotalSold != 5 {
		t.Errorf("unexpected top products %+v", d.TopProducts)
	}
	if len(d.RecentOrders) != 3 || d.RecentOrders[0].Status != models.OrderPending {
		t.Errorf("unexpected recent orders %+v", d.RecentOrders)
	}

	w = authed(r, http.MethodGet, "/api/customers/"+c.ID, nil)
	var got models.Customer
	json.NewDecoder(w.Body).Decode(&got)
	if got.TotalSpent != 129.97 || got.Orders != 3 {
		t.Errorf("unexpected customer aggregates %+v", got)
	}
}

func TestDeleteCustomerKeepsOrders(t *testing.T) {
	clearAllData()
	t.Cleanup(clearAllData)
	r := newRouter()

	p := mustProduct(r, "THINK", 49.99)
	c := mustCustomer(r, "Mike Chen", "mike@email.com")
	authed(r, http.MethodPost, "/api/orders", handlers.OrderRequest{CustomerID: c.ID, Status: models.OrderCompleted, Products: []models.LineItem{{ProductID: p.ID, Quantity: 1}}})

	if w := authed(r, http.MethodDelete, "/api/customers/"+c.ID, nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w := authed(r, http.MethodGet, "/api/orders", nil)
	var list []models.OrderView
	json.NewDecoder(w.Body).Decode(&list)
	if len(list) != 1 || list[0].Customer != nil {
		t.Errorf("expected the order to survive without its customer, got %+v", list)
	}

	w = authed(r, http.MethodGet, "/api/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Errorf("dashboard should still compute, got %d", w.Code)
	}
}
