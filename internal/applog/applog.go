package applog

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// LevelAudit sits between info and warn so audit trails survive an info
// filter.
const LevelAudit = slog.Level(2)

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				a.Key = "ts"
			case slog.LevelKey:
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelAudit {
					a.Value = slog.StringValue("AUDIT")
				}
			case slog.MessageKey:
				a.Key = "action"
			}
			return a
		},
	}))
}

type userKey struct{}

// UserIDKey is the request context key the auth middleware stores the
// caller's id under.
var UserIDKey = userKey{}

func requestAttrs(r *http.Request) []slog.Attr {
	if r == nil {
		return nil
	}
	attrs := []slog.Attr{
		slog.String("ip", r.RemoteAddr),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	}
	if id := middleware.GetReqID(r.Context()); id != "" {
		attrs = append(attrs, slog.String("req_id", id))
	}
	if uid, ok := r.Context().Value(UserIDKey).(string); ok {
		attrs = append(attrs, slog.String("user_id", uid))
	}
	return attrs
}

func write(level slog.Level, r *http.Request, action string, err error, fields map[string]any) {
	ctx := context.Background()
	if r != nil {
		ctx = r.Context()
	}
	attrs := requestAttrs(r)
	if err != nil {
		attrs = append(attrs, slog.String("err", err.Error()))
	}
	if len(fields) > 0 {
		attrs = append(attrs, slog.Any("fields", fields))
	}
	logger.LogAttrs(ctx, level, action, attrs...)
}

func Info(r *http.Request, action string, fields map[string]any) {
	write(slog.LevelInfo, r, action, nil, fields)
}
func Audit(r *http.Request, action string, fields map[string]any) {
	write(LevelAudit, r, action, nil, fields)
}
func Security(r *http.Request, action string, fields map[string]any) {
	write(slog.LevelWarn, r, action, nil, fields)
}
func Error(r *http.Request, action string, err error, fields map[string]any) {
	write(slog.LevelError, r, action, err, fields)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// AccessLog writes one line per request with status and latency.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		attrs := append(requestAttrs(r),
			slog.Int("status", rec.status),
			slog.Int64("latency_ms", time.Since(start).Milliseconds()),
		)
		logger.LogAttrs(r.Context(), slog.LevelInfo, "http.request", attrs...)
	})
}
