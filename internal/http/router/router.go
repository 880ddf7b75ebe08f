package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rogerio-castellano/ops-dashboard/internal/applog"
	"github.com/rogerio-castellano/ops-dashboard/internal/http/handlers"
	mw "github.com/rogerio-castellano/ops-dashboard/internal/http/middleware"
	rl "github.com/rogerio-castellano/ops-dashboard/internal/http/rate_limiter"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/ops-dashboard/docs"
)

type Options struct {
	Server *handlers.Server
	// Desktop adds the snapshot endpoints; nil for the hosted server.
	Desktop *handlers.Desktop
	// Limiter throttles the auth endpoints; nil disables throttling.
	Limiter *rl.Limiter
	// StaticDir holds the UI. Unknown non-API paths fall back to its index.html.
	StaticDir string
}

func NewRouter(opts Options) http.Handler {
	s := opts.Server
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(applog.AccessLog)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", s.HealthHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if opts.Limiter != nil {
				r.Use(opts.Limiter.Middleware)
			}
			r.Post("/auth/register", s.RegisterHandler)
			r.Post("/auth/login", s.LoginHandler)
			r.Post("/auth/refresh", s.RefreshHandler)
			r.Post("/auth/logout", s.LogoutHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth(s.Issuer()))

			if d := opts.Desktop; d != nil {
				r.Get("/desktop/summary", d.SummaryHandler)
				r.Post("/desktop/save", d.SaveHandler)
				r.Get("/desktop/load", d.LoadHandler)
			}

			r.Get("/dashboard", s.DashboardHandler)
			r.Get("/dashboard/cards", s.DashboardCardsHandler)
			r.Get("/rankings/customers", s.RankCustomersHandler)
			r.Get("/rankings/products", s.RankProductsHandler)
			r.Post("/reports/generate", s.GenerateReportHandler)

			r.Get("/products", s.GetProductsHandler)
			r.Post("/products", s.CreateProductHandler)
			r.Get("/products/{id}", s.GetProductByIDHandler)
			r.Put("/products/{id}", s.UpdateProductHandler)
			r.Delete("/products/{id}", s.DeleteProductHandler)

			r.Get("/customers", s.GetCustomersHandler)
			r.Post("/customers", s.CreateCustomerHandler)
			r.Get("/customers/export", s.ExportCustomersHandler)
			r.Get("/customers/{id}", s.GetCustomerByIDHandler)
			r.Put("/customers/{id}", s.UpdateCustomerHandler)
			r.Delete("/customers/{id}", s.DeleteCustomerHandler)

			r.Get("/orders", s.GetOrdersHandler)
			r.Post("/orders", s.CreateOrderHandler)
			r.Get("/orders/{id}", s.GetOrderByIDHandler)
			r.Put("/orders/{id}", s.UpdateOrderHandler)
			r.Delete("/orders/{id}", s.DeleteOrderHandler)

			r.Get("/integrations", s.GetIntegrationsHandler)
			r.Post("/integrations", s.CreateIntegrationHandler)
			r.Get("/integrations/{id}", s.GetIntegrationByIDHandler)
			r.Put("/integrations/{id}", s.UpdateIntegrationHandler)
			r.Delete("/integrations/{id}", s.DeleteIntegrationHandler)
			r.Post("/integrations/{id}/sync", s.SyncIntegrationHandler)
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		})
	})

	if opts.StaticDir != "" {
		r.NotFound(spaHandler(opts.StaticDir))
	}
	return r
}

// spaHandler serves files from dir and answers every other path with
// index.html so client side routes survive a reload.
func spaHandler(dir string) http.HandlerFunc {
	files := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		clean := filepath.Clean("/" + strings.TrimPrefix(r.URL.Path, "/"))
		if info, err := os.Stat(filepath.Join(dir, clean)); err == nil && !info.IsDir() {
			files.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, index)
	}
}
