package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "marketplace",
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Current number of in-flight HTTP requests.",
	})

	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by route and status class.",
	}, []string{"method", "route", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "marketplace",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latencies in seconds.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"method", "route"})

	responseBytes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "http",
		Name:      "response_bytes_total",
		Help:      "Total number of bytes written in HTTP responses.",
	}, []string{"route"})
)

// Metrics собирает метрики по шаблону маршрута, а не по пути,
// чтобы id объявлений и заказов не раздували кардинальность.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestsInFlight.Inc()
		defer requestsInFlight.Dec()

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := routePattern(r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status/100)+"xx").Inc()
		requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		responseBytes.WithLabelValues(route).Add(float64(ww.BytesWritten()))
	})
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if pattern := rc.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
