package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/report"
)

// DashboardHandler godoc
// @Summary Dashboard figures
// @Description Revenue from completed orders, entity counts, the five newest orders and the five best sellers.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} report.Dashboard
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard [get]
func (s *Server) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	d, err := s.reports.Dashboard(r.Context())
	if err != nil {
		writeError(w, r, "dashboard", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, d)
}

// DashboardCardsHandler godoc
// @Summary Dashboard stat cards
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} report.Card
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard/cards [get]
func (s *Server) DashboardCardsHandler(w http.ResponseWriter, r *http.Request) {
	d, err := s.reports.Dashboard(r.Context())
	if err != nil {
		writeError(w, r, "dashboard_cards", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, report.Cards(d))
}

// RankCustomersHandler godoc
// @Summary Top customers by a numeric field
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param by query string false "progressScore (default), totalSpent or orders"
// @Param limit query int false "How many to return (default 3)"
// @Success 200 {array} models.Customer
// @Failure 400 {object} ErrorResponse
// @Router /api/rankings/customers [get]
func (s *Server) RankCustomersHandler(w http.ResponseWriter, r *http.Request) {
	by := r.URL.Query().Get("by")
	if by == "" {
		by = "progressScore"
	}
	limit, err := queryInt(r, "limit", report.DefaultRankSize)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	ranked, err := s.reports.RankCustomers(r.Context(), by, limit)
	if err != nil {
		writeError(w, r, "rank_customers", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, ranked)
}

// RankProductsHandler godoc
// @Summary Top products by a numeric field
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param by query string false "monthlySales (default), price, stock or rating"
// @Param limit query int false "How many to return (default 3)"
// @Success 200 {array} models.Product
// @Failure 400 {object} ErrorResponse
// @Router /api/rankings/products [get]
func (s *Server) RankProductsHandler(w http.ResponseWriter, r *http.Request) {
	by := r.URL.Query().Get("by")
	if by == "" {
		by = "monthlySales"
	}
	limit, err := queryInt(r, "limit", report.DefaultRankSize)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	ranked, err := s.reports.RankProducts(r.Context(), by, limit)
	if err != nil {
		writeError(w, r, "rank_products", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, ranked)
}

// GenerateReportHandler godoc
// @Summary Generate a report
// @Description type is sales, inventory or customers. The customers report is also available as CSV.
// @Tags reports
// @Accept json
// @Produce json,text/csv
// @Security BearerAuth
// @Param request body ReportRequest true "Report type and format"
// @Success 200 {object} report.Generated
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/reports/generate [post]
func (s *Server) GenerateReportHandler(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if err := readJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid input")
		return
	}
	if errs := validateReportRequest(req); len(errs) > 0 {
		writeError(w, r, "generate_report", errs)
		return
	}

	generated, err := s.reports.Generate(r.Context(), req.Type, req.Format)
	if err != nil {
		writeError(w, r, "generate_report", err)
		return
	}
	if req.Format == "csv" {
		customers, _ := generated.Data.([]models.Customer)
		writeCustomersCSV(w, r, customers)
		return
	}
	_ = writeJSON(w, http.StatusOK, generated)
}

// HealthHandler godoc
// @Summary Liveness and store reachability
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /healthz [get]
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		_ = writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "store unreachable"})
		return
	}
	_ = writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
