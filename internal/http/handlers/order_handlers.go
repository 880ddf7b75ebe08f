package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/ops-dashboard/internal/applog"
)

// GetOrdersHandler godoc
// @Summary List all orders, newest first, with their customers
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.OrderView
// @Failure 500 {object} ErrorResponse
// @Router /api/orders [get]
func (s *Server) GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.List(r.Context())
	if err != nil {
		writeError(w, r, "list_orders", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, orders)
}

// GetOrderByIDHandler godoc
// @Summary Get order by ID
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.OrderView
// @Failure 404 {object} ErrorResponse
// @Router /api/orders/{id} [get]
func (s *Server) GetOrderByIDHandler(w http.ResponseWriter, r *http.Request) {
	order, err := s.orders.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "get_order", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, order)
}

// CreateOrderHandler godoc
// @Summary Create an order
// @Description The total is computed from the line items. A line item without a price takes the product's price.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body OrderRequest true "Order"
// @Success 201 {object} models.Order
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Customer or product not found"
// @Router /api/orders [post]
func (s *Server) CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := readJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid input")
		return
	}

	created, err := s.orders.Create(r.Context(), req.model())
	if err != nil {
		writeError(w, r, "create_order", err)
		return
	}
	applog.Audit(r, "order_created", map[string]any{"id": created.ID, "total": created.Total})
	_ = writeJSON(w, http.StatusCreated, created)
}

// UpdateOrderHandler godoc
// @Summary Replace an order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param order body OrderRequest true "Order"
// @Success 200 {object} models.Order
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/orders/{id} [put]
func (s *Server) UpdateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := readJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid input")
		return
	}

	updated, err := s.orders.Update(r.Context(), chi.URLParam(r, "id"), req.model())
	if err != nil {
		writeError(w, r, "update_order", err)
		return
	}
	applog.Audit(r, "order_updated", map[string]any{"id": updated.ID, "status": updated.Status})
	_ = writeJSON(w, http.StatusOK, updated)
}

// DeleteOrderHandler godoc
// @Summary Delete an order
// @Tags orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /api/orders/{id} [delete]
func (s *Server) DeleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.orders.Delete(r.Context(), id); err != nil {
		writeError(w, r, "delete_order", err)
		return
	}
	applog.Audit(r, "order_deleted", map[string]any{"id": id})
	w.WriteHeader(http.StatusNoContent)
}
