package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/ops-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

func TestCreateOrderHandler_ComputesTotal(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	think := mustProduct(r, "THINK", 49.99)
	water := mustProduct(r, "Brain Water", 29.99)
	c := mustCustomer(r, "Sarah Johnson", "sarah@email.com")

	w := createOrder(r, handler.OrderRequest{
		CustomerID: c.ID,
		Status:     models.OrderCompleted,
		Products: []models.LineItem{
			{ProductID: think.ID, Quantity: 2},
			{ProductID: water.ID, Quantity: 1, Price: 25},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var o models.Order
	json.NewDecoder(w.Body).Decode(&o)
	if o.Total != 124.98 {
		t.Errorf("expected total 124.98, got %v", o.Total)
	}

	w = authed(r, http.MethodGet, "/api/customers/"+c.ID, nil)
	var got models.Customer
	json.NewDecoder(w.Body).Decode(&got)
	if got.TotalSpent != 124.98 || got.Orders != 1 || got.LastOrder == nil {
		t.Errorf("customer aggregates not updated: %+v", got)
	}
}

func TestCreateOrderHandler_Rejections(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	p := mustProduct(r, "THINK", 49.99)
	c := mustCustomer(r, "Mike Chen", "mike@email.com")

	tests := []struct {
		name       string
		payload    handler.OrderRequest
		expectCode int
	}{
		{"Unknown customer", handler.OrderRequest{CustomerID: "nobody", Products: []models.LineItem{{ProductID: p.ID, Quantity: 1}}}, http.StatusNotFound},
		{"Unknown product", handler.OrderRequest{CustomerID: c.ID, Products: []models.LineItem{{ProductID: "nothing", Quantity: 1}}}, http.StatusNotFound},
		{"No items", handler.OrderRequest{CustomerID: c.ID}, http.StatusBadRequest},
		{"Zero quantity", handler.OrderRequest{CustomerID: c.ID, Products: []models.LineItem{{ProductID: p.ID}}}, http.StatusBadRequest},
		{"Bad status", handler.OrderRequest{CustomerID: c.ID, Status: "lost", Products: []models.LineItem{{ProductID: p.ID, Quantity: 1}}}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createOrder(r, tt.payload)
			if w.Code != tt.expectCode {
				t.Errorf("expected status %d, got %d: %s", tt.expectCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestGetOrdersHandler_AttachesCustomer(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	p := mustProduct(r, "THINK", 49.99)
	c := mustCustomer(r, "Mike Chen", "mike@email.com")
	createOrder(r, handler.OrderRequest{CustomerID: c.ID, Products: []models.LineItem{{ProductID: p.ID, Quantity: 1}}})

	w := authed(r, http.MethodGet, "/api/orders", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var orders []models.OrderView
	json.NewDecoder(w.Body).Decode(&orders)
	if len(orders) != 1 || orders[0].Customer == nil || orders[0].Customer.Name != "Mike Chen" {
		t.Errorf("expected one order with its customer, got %+v", orders)
	}
	if orders[0].Status != models.OrderPending {
		t.Errorf("expected default status pending, got %q", orders[0].Status)
	}
}

func TestDeleteOrderHandler_ReconcilesCustomer(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	p := mustProduct(r, "THINK", 49.99)
	c := mustCustomer(r, "Mike Chen", "mike@email.com")
	w := createOrder(r, handler.OrderRequest{CustomerID: c.ID, Status: models.OrderCompleted, Products: []models.LineItem{{ProductID: p.ID, Quantity: 1}}})
	var o models.Order
	json.NewDecoder(w.Body).Decode(&o)

	w = authed(r, http.MethodDelete, "/api/orders/"+o.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = authed(r, http.MethodGet, "/api/customers/"+c.ID, nil)
	var got models.Customer
	json.NewDecoder(w.Body).Decode(&got)
	if got.TotalSpent != 0 || got.Orders != 0 {
		t.Errorf("expected aggregates reset after delete, got %+v", got)
	}
}
