package applog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logger
	logger = newLogger(&buf)
	t.Cleanup(func() { logger = prev })
	return &buf
}

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(l), &m), l)
		out = append(out, m)
	}
	return out
}

func TestLevelsAndRequestFields(t *testing.T) {
	buf := capture(t)

	r := httptest.NewRequest(http.MethodDelete, "/api/products/p1", nil)
	r = r.WithContext(context.WithValue(r.Context(), UserIDKey, "u1"))

	Audit(r, "product_deleted", map[string]any{"id": "p1"})
	Security(r, "login_failed", nil)
	Error(nil, "seed", errors.New("boom"), nil)

	got := lines(t, buf)
	require.Len(t, got, 3)

	assert.Equal(t, "AUDIT", got[0]["level"])
	assert.Equal(t, "product_deleted", got[0]["action"])
	assert.Equal(t, "DELETE", got[0]["method"])
	assert.Equal(t, "/api/products/p1", got[0]["path"])
	assert.Equal(t, "u1", got[0]["user_id"])
	assert.Equal(t, map[string]any{"id": "p1"}, got[0]["fields"])
	assert.Contains(t, got[0], "ts")

	assert.Equal(t, "WARN", got[1]["level"])
	assert.NotContains(t, got[1], "fields")

	assert.Equal(t, "ERROR", got[2]["level"])
	assert.Equal(t, "boom", got[2]["err"])
	assert.NotContains(t, got[2], "path")
}

func TestAccessLog(t *testing.T) {
	buf := capture(t)

	h := middleware.RequestID(AccessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	got := lines(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "http.request", got[0]["action"])
	assert.Equal(t, float64(http.StatusTeapot), got[0]["status"])
	assert.Contains(t, got[0], "latency_ms")
	assert.NotEmpty(t, got[0]["req_id"])
}
