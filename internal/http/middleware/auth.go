package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rogerio-castellano/ops-dashboard/internal/applog"
	"github.com/rogerio-castellano/ops-dashboard/internal/auth"
)

type contextKey string

const identityKey = contextKey("identity")

// Auth rejects requests without a valid bearer token: 401 when the token is
// missing, 403 when it is invalid or expired.
func Auth(issuer *auth.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := issuer.Verify(auth.BearerToken(r.Header.Get("Authorization")))
			if err != nil {
				status := http.StatusForbidden
				if errors.Is(err, auth.ErrMissingToken) {
					status = http.StatusUnauthorized
				}
				applog.Security(r, "auth_rejected", map[string]any{"reason": err.Error()})
				writeError(w, status, err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, id)
			ctx = context.WithValue(ctx, applog.UserIDKey, id.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom returns the identity Auth stored on the request.
func IdentityFrom(r *http.Request) (auth.Identity, bool) {
	id, ok := r.Context().Value(identityKey).(auth.Identity)
	return id, ok
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
