package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"product not found"}`))
	})

	before := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "/products/{id}", "4xx"))
	bytesBefore := testutil.ToFloat64(responseBytes.WithLabelValues("/products/{id}"))

	for _, id := range []string{"p-1", "p-2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/products/"+id, nil))
	}

	assert.Equal(t, before+2, testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "/products/{id}", "4xx")))
	assert.Equal(t, bytesBefore+58, testutil.ToFloat64(responseBytes.WithLabelValues("/products/{id}")))
	assert.Zero(t, testutil.ToFloat64(requestsInFlight))
}

func TestRoutePattern_Unmatched(t *testing.T) {
	assert.Equal(t, "unmatched", routePattern(httptest.NewRequest(http.MethodGet, "/nowhere", nil)))
}
