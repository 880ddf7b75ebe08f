package handlers

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/ops-dashboard/internal/applog"
	"github.com/rogerio-castellano/ops-dashboard/internal/export"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

// GetCustomersHandler godoc
// @Summary List all customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Customer
// @Failure 500 {object} ErrorResponse
// @Router /api/customers [get]
func (s *Server) GetCustomersHandler(w http.ResponseWriter, r *http.Request) {
	customers, err := s.customers.List(r.Context())
	if err != nil {
		writeError(w, r, "list_customers", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, customers)
}

// GetCustomerByIDHandler godoc
// @Summary Get customer by ID
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} models.Customer
// @Failure 404 {object} ErrorResponse
// @Router /api/customers/{id} [get]
func (s *Server) GetCustomerByIDHandler(w http.ResponseWriter, r *http.Request) {
	customer, err := s.customers.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "get_customer", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, customer)
}

// CreateCustomerHandler godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customer body CustomerRequest true "Customer"
// @Success 201 {object} models.Customer
// @Failure 400 {object} ErrorResponse
// @Router /api/customers [post]
func (s *Server) CreateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := readJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid input")
		return
	}

	created, err := s.customers.Create(r.Context(), req.model())
	if err != nil {
		writeError(w, r, "create_customer", err)
		return
	}
	applog.Audit(r, "customer_created", map[string]any{"id": created.ID})
	_ = writeJSON(w, http.StatusCreated, created)
}

// UpdateCustomerHandler godoc
// @Summary Replace a customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param customer body CustomerRequest true "Customer"
// @Success 200 {object} models.Customer
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/customers/{id} [put]
func (s *Server) UpdateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := readJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid input")
		return
	}

	updated, err := s.customers.Update(r.Context(), chi.URLParam(r, "id"), req.model())
	if err != nil {
		writeError(w, r, "update_customer", err)
		return
	}
	applog.Audit(r, "customer_updated", map[string]any{"id": updated.ID})
	_ = writeJSON(w, http.StatusOK, updated)
}

// DeleteCustomerHandler godoc
// @Summary Delete a customer
// @Description The customer's orders are kept.
// @Tags customers
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /api/customers/{id} [delete]
func (s *Server) DeleteCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.customers.Delete(r.Context(), id); err != nil {
		writeError(w, r, "delete_customer", err)
		return
	}
	applog.Audit(r, "customer_deleted", map[string]any{"id": id})
	w.WriteHeader(http.StatusNoContent)
}

// ExportCustomersHandler godoc
// @Summary Export customers as CSV
// @Tags customers
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 500 {object} ErrorResponse
// @Router /api/customers/export [get]
func (s *Server) ExportCustomersHandler(w http.ResponseWriter, r *http.Request) {
	customers, err := s.reports.Customers(r.Context())
	if err != nil {
		writeError(w, r, "export_customers", err)
		return
	}
	writeCustomersCSV(w, r, customers)
}

func writeCustomersCSV(w http.ResponseWriter, r *http.Request, customers []models.Customer) {
	var buf bytes.Buffer
	if err := export.WriteCustomersCSV(&buf, customers); err != nil {
		writeError(w, r, "export_customers", err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="customers.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
