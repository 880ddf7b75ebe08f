package handlers_integrated_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rogerio-castellano/ops-dashboard/internal/http/handlers"
)

func TestAuthFlow(t *testing.T) {
	t.Cleanup(clearAllUsersExceptAdmin)
	r := newRouter()

	runWithVisitorCleanup(t, "Login with valid credentials", func(t *testing.T) {
		w := send(r, http.MethodPost, "/api/auth/login", "", handlers.CredentialsRequest{Email: adminEmail, Password: adminPassword})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}

		var resp handlers.AuthResult
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode token response: %v", err)
		}
		if resp.Token == "" {
			t.Error("expected access token in response")
		}
		if resp.RefreshToken == "" {
			t.Error("expected refresh token in response")
		}
	})

	runWithVisitorCleanup(t, "Protected route without token is rejected", func(t *testing.T) {
		w := send(r, http.MethodPost, "/api/products", "", handlers.ProductRequest{Name: "THINK", Price: 49.99})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 Unauthorized, got %d", w.Code)
		}
	})

	runWithVisitorCleanup(t, "Register then login", func(t *testing.T) {
		creds := handlers.CredentialsRequest{Email: "ops@braintree.com", Password: "secret1", Name: "Ops"}
		if w := send(r, http.MethodPost, "/api/auth/register", "", creds); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if w := send(r, http.MethodPost, "/api/auth/register", "", creds); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for taken email, got %d", w.Code)
		}
		if w := send(r, http.MethodPost, "/api/auth/login", "", creds); w.Code != http.StatusOK {
			t.Errorf("expected 200 on login, got %d", w.Code)
		}
	})

	runWithVisitorCleanup(t, "Login is rate limited", func(t *testing.T) {
		limited := false
		for rep := 0; rep < 10; rep++ {
			w := send(r, http.MethodPost, "/api/auth/login", "", handlers.CredentialsRequest{Email: adminEmail, Password: "wrong"})
			if w.Code == http.StatusTooManyRequests {
				limited = true
				break
			}
		}
		if !limited {
			t.Error("expected 429 once the burst is spent")
		}
	})
}
