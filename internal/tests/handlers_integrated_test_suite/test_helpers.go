package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/auth"
	handler "github.com/rogerio-castellano/ops-dashboard/internal/http/handlers"
	rl "github.com/rogerio-castellano/ops-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/ops-dashboard/internal/http/router"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/report"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
)

const (
	adminEmail    = "admin@braintree.com"
	adminPassword = "secret"
)

var (
	token    string
	database *sql.DB
	store    *repo.PostgresStore
	authSvc  *auth.Service
	limiter  = rl.New(1, 5)
)

func newRouter() http.Handler {
	srv := handler.NewServer(store, report.NewEngine(store, 5*time.Second), authSvc, nil)
	return router.NewRouter(router.Options{Server: srv, Limiter: limiter})
}

func runWithVisitorCleanup(t *testing.T, name string, testFunc func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		limiter.Reset()
		testFunc(t)
	})
}

func generateToken(r http.Handler, email, password string) (string, error) {
	limiter.Reset()
	w := send(r, http.MethodPost, "/api/auth/login", "", handler.CredentialsRequest{Email: email, Password: password})

	var resp handler.AuthResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func send(r http.Handler, method, path, bearer string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authed(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	return send(r, method, path, token, payload)
}

func clearAllData() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := database.ExecContext(ctx, "TRUNCATE TABLE orders, customers, products, integrations CASCADE")
	if err != nil {
		fmt.Println(fmt.Errorf("failed to truncate tables: %w", err))
	}
}

func clearAllUsersExceptAdmin() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := database.ExecContext(ctx, "DELETE FROM users WHERE email <> $1", adminEmail)
	if err != nil {
		fmt.Println(fmt.Errorf("failed to delete users: %w", err))
	}
}

func mustCreate[T any](r http.Handler, path string, payload any) T {
	w := authed(r, http.MethodPost, path, payload)
	var out T
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil || w.Code != http.StatusCreated {
		panic(fmt.Sprintf("POST %s: %d %v", path, w.Code, err))
	}
	return out
}

func mustProduct(r http.Handler, name string, price float64) models.Product {
	return mustCreate[models.Product](r, "/api/products", handler.ProductRequest{Name: name, Price: price})
}

func mustCustomer(r http.Handler, name, email string) models.Customer {
	return mustCreate[models.Customer](r, "/api/customers", handler.CustomerRequest{Name: name, Email: email})
}
