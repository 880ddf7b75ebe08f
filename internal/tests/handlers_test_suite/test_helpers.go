package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/auth"
	handler "github.com/rogerio-castellano/ops-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/ops-dashboard/internal/http/router"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/report"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
)

const (
	adminEmail    = "admin@braintree.com"
	adminPassword = "admin123"
)

var (
	token   string
	store   *repo.MemoryStore
	authSvc *auth.Service
)

func init() {
	store = repo.NewMemoryStore()
	authSvc = auth.NewService(store.Users(), auth.NewIssuer("secret", time.Hour), auth.NewMemoryRefreshStore(), time.Hour)
	if _, err := authSvc.EnsureAdmin(context.Background(), adminEmail, adminPassword, "Admin"); err != nil {
		panic(fmt.Sprintf("error creating admin: %v", err))
	}

	var err error
	token, err = generateToken(newRouter(), adminEmail, adminPassword)
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func newRouter() http.Handler {
	srv := handler.NewServer(store, report.NewEngine(store, time.Second), authSvc, nil)
	return router.NewRouter(router.Options{Server: srv})
}

func clearAll() {
	store.Clear()
}

func generateToken(r http.Handler, email, password string) (string, error) {
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

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return authed(r, http.MethodPost, "/api/products", p)
}

func createCustomer(r http.Handler, c handler.CustomerRequest) *httptest.ResponseRecorder {
	return authed(r, http.MethodPost, "/api/customers", c)
}

func createOrder(r http.Handler, o handler.OrderRequest) *httptest.ResponseRecorder {
	return authed(r, http.MethodPost, "/api/orders", o)
}

func mustProduct(r http.Handler, name string, price float64) models.Product {
	w := createProduct(r, handler.ProductRequest{Name: name, Price: price})
	var p models.Product
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil || w.Code != http.StatusCreated {
		panic(fmt.Sprintf("creating product %s: %d %v", name, w.Code, err))
	}
	return p
}

func mustCustomer(r http.Handler, name, email string) models.Customer {
	w := createCustomer(r, handler.CustomerRequest{Name: name, Email: email, ProgressScore: 50})
	var c models.Customer
	if err := json.NewDecoder(w.Body).Decode(&c); err != nil || w.Code != http.StatusCreated {
		panic(fmt.Sprintf("creating customer %s: %d %v", name, w.Code, err))
	}
	return c
}

func decodeErrors(w *httptest.ResponseRecorder) (handler.ErrorResponse, error) {
	var resp handler.ErrorResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	return resp, err
}
