package handlers_mongo_test_suite

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
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	adminEmail    = "admin@braintree.com"
	adminPassword = "secret"
	testDatabase  = "ops_dashboard_test"
)

var (
	token   string
	mongoDB *mongo.Database
	store   *repo.MongoStore
	authSvc *auth.Service
)

func newRouter() http.Handler {
	srv := handler.NewServer(store, report.NewEngine(store, 5*time.Second), authSvc, nil)
	return router.NewRouter(router.Options{Server: srv})
}

func newEngine() *report.Engine {
	return report.NewEngine(store, 5*time.Second)
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

// clearAllData empties the entity collections and keeps users and indexes.
func clearAllData() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	for _, name := range []string{"products", "customers", "orders", "integrations"} {
		if _, err := mongoDB.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			fmt.Println(fmt.Errorf("failed to clear %s: %w", name, err))
		}
	}
}

func mustCreateProduct(p models.Product) models.Product {
	created, err := store.Products().Create(context.Background(), p)
	if err != nil {
		panic(fmt.Sprintf("creating product %s: %v", p.Name, err))
	}
	return created
}

func mustCreateOrder(o models.Order) models.Order {
	created, err := store.Orders().Create(context.Background(), o)
	if err != nil {
		panic(fmt.Sprintf("creating order: %v", err))
	}
	return created
}
