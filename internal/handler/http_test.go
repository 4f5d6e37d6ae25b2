package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/marketplace-service/internal/middleware"
	"github.com/SergeyBogomolovv/marketplace-service/pkg/token"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const (
	buyerID  = "6f1d2c3a-0b7e-4c51-9a2d-1e5f3b7c9d01"
	sellerID = "0c9e8d7f-6a5b-4c3d-8e2f-1a0b9c8d7e02"
	adminID  = "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c03"

	orderID   = "3b2f6d0e-7c41-4f0a-9d8e-5a6b7c8d9e10"
	productID = "9d8c7b6a-5f4e-4d3c-8b2a-1f0e9d8c7b11"
	reviewID  = "5e4d3c2b-1a0f-4e9d-8c7b-6a5f4e3d2c12"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// asUser подставляет пользователя в контекст вместо проверки JWT.
func asUser(userID, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := middleware.WithClaims(r.Context(), token.Claims{UserID: userID, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type initer interface {
	Init(r chi.Router)
}

func serve(t *testing.T, h initer, method, target, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return serveRequest(t, h, req)
}

func serveRequest(t *testing.T, h initer, req *http.Request) (int, string) {
	t.Helper()

	r := chi.NewRouter()
	h.Init(r)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(data)
}
