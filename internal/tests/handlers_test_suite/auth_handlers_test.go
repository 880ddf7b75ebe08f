package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/ops-dashboard/internal/http/handlers"
)

func TestLoginHandler(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name       string
		payload    handler.CredentialsRequest
		expectCode int
	}{
		{"Valid credentials", handler.CredentialsRequest{Email: adminEmail, Password: adminPassword}, http.StatusOK},
		{"Email is case insensitive", handler.CredentialsRequest{Email: "ADMIN@braintree.com", Password: adminPassword}, http.StatusOK},
		{"Wrong password", handler.CredentialsRequest{Email: adminEmail, Password: "wrong-password"}, http.StatusUnauthorized},
		{"Unknown user", handler.CredentialsRequest{Email: "ghost@braintree.com", Password: adminPassword}, http.StatusUnauthorized},
		{"Missing fields", handler.CredentialsRequest{}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := send(r, http.MethodPost, "/api/auth/login", "", tt.payload)
			if w.Code != tt.expectCode {
				t.Errorf("expected status %d, got %d: %s", tt.expectCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestRegisterRefreshLogout(t *testing.T) {
	r := newRouter()

	w := send(r, http.MethodPost, "/api/auth/register", "", handler.CredentialsRequest{Email: "ops@braintree.com", Password: "secret1", Name: "Ops"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var session handler.AuthResult
	json.NewDecoder(w.Body).Decode(&session)
	if session.Token == "" || session.RefreshToken == "" || session.User.Email != "ops@braintree.com" {
		t.Fatalf("unexpected session %+v", session)
	}

	w = send(r, http.MethodPost, "/api/auth/register", "", handler.CredentialsRequest{Email: "ops@braintree.com", Password: "secret1", Name: "Ops"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for taken email, got %d", w.Code)
	}

	w = send(r, http.MethodPost, "/api/auth/refresh", "", handler.RefreshRequest{RefreshToken: session.RefreshToken})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on refresh, got %d", w.Code)
	}
	var refreshed handler.AuthResult
	json.NewDecoder(w.Body).Decode(&refreshed)

	w = send(r, http.MethodPost, "/api/auth/refresh", "", handler.RefreshRequest{RefreshToken: session.RefreshToken})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("a refresh token must only work once, got %d", w.Code)
	}

	w = send(r, http.MethodPost, "/api/auth/logout", "", handler.RefreshRequest{RefreshToken: refreshed.RefreshToken})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on logout, got %d", w.Code)
	}
	w = send(r, http.MethodPost, "/api/auth/refresh", "", handler.RefreshRequest{RefreshToken: refreshed.RefreshToken})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", w.Code)
	}
}

func TestProtectedRoutes(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name       string
		bearer     string
		expectCode int
	}{
		{"No token", "", http.StatusUnauthorized},
		{"Invalid token", "abc.def.ghi", http.StatusForbidden},
		{"Valid token", token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := send(r, http.MethodGet, "/api/products", tt.bearer, nil)
			if w.Code != tt.expectCode {
				t.Errorf("expected status %d, got %d", tt.expectCode, w.Code)
			}
		})
	}
}
