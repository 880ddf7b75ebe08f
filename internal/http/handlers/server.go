package handlers

import (
	"github.com/rogerio-castellano/ops-dashboard/internal/auth"
	"github.com/rogerio-castellano/ops-dashboard/internal/events"
	"github.com/rogerio-castellano/ops-dashboard/internal/report"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
	"github.com/rogerio-castellano/ops-dashboard/internal/services"
)

// Server carries the dependencies every handler needs. It is built once in
// main and shared by all requests.
type Server struct {
	store        repo.Store
	reports      *report.Engine
	auth         *auth.Service
	products     *services.ProductService
	customers    *services.CustomerService
	orders       *services.OrderService
	integrations *services.IntegrationService
}

func NewServer(store repo.Store, engine *report.Engine, authSvc *auth.Service, pub events.Publisher) *Server {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Server{
		store:        store,
		reports:      engine,
		auth:         authSvc,
		products:     services.NewProductService(store, pub),
		customers:    services.NewCustomerService(store, pub),
		orders:       services.NewOrderService(store, pub),
		integrations: services.NewIntegrationService(store, pub),
	}
}

func (s *Server) Issuer() *auth.Issuer { return s.auth.Issuer() }
