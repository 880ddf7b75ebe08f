package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/ops-dashboard/internal/applog"
)

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Product
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func (s *Server) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.List(r.Context())
	if err != nil {
		writeError(w, r, "list_products", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, products)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} ErrorResponse
// @Router /api/products/{id} [get]
func (s *Server) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	product, err := s.products.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "get_product", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, product)
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Router /api/products [post]
func (s *Server) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid input")
		return
	}

	created, err := s.products.Create(r.Context(), req.model())
	if err != nil {
		writeError(w, r, "create_product", err)
		return
	}
	applog.Audit(r, "product_created", map[string]any{"id": created.ID})
	_ = writeJSON(w, http.StatusCreated, created)
}

// UpdateProductHandler godoc
// @Summary Replace a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body ProductRequest true "Product"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/products/{id} [put]
func (s *Server) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid input")
		return
	}

	updated, err := s.products.Update(r.Context(), chi.URLParam(r, "id"), req.model())
	if err != nil {
		writeError(w, r, "update_product", err)
		return
	}
	applog.Audit(r, "product_updated", map[string]any{"id": updated.ID})
	_ = writeJSON(w, http.StatusOK, updated)
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /api/products/{id} [delete]
func (s *Server) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.products.Delete(r.Context(), id); err != nil {
		writeError(w, r, "delete_product", err)
		return
	}
	applog.Audit(r, "product_deleted", map[string]any{"id": id})
	w.WriteHeader(http.StatusNoContent)
}
