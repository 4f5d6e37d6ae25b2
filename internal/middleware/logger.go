package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func Logger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := wrapResponseWriter(w)
			user := new(requestUser)
			next.ServeHTTP(ww, r.WithContext(context.WithValue(r.Context(), requestUserKey{}, user)))

			level := slog.LevelInfo
			if ww.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			attrs := []slog.Attr{
				slog.Int("status", ww.status),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote", r.RemoteAddr),
				slog.String("duration", time.Since(start).String()),
				slog.String("request_id", chimw.GetReqID(r.Context())),
			}
			if user.id != "" {
				attrs = append(attrs, slog.String("user_id", user.id))
			}

			logger.LogAttrs(r.Context(), level, "request", attrs...)
		})
	}
}

// requestUser заполняется в Auth, чтобы логгер запроса видел пользователя.
type requestUser struct {
	id string
}

type requestUserKey struct{}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func wrapResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, status: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
