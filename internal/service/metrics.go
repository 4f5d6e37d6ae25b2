package service

import (
	"github.com/SergeyBogomolovv/marketplace-service/pkg/cache"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of created orders.",
	})

	orderTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "orders",
		Name:      "status_transitions_total",
		Help:      "Total number of applied order status transitions.",
	}, []string{"from", "to"})

	orderTransitionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "orders",
		Name:      "status_transitions_rejected_total",
		Help:      "Total number of rejected order status transitions by reason.",
	}, []string{"reason"})

	productSoldReconciliations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "orders",
		Name:      "product_sold_reconciliations_total",
		Help:      "Total number of product sold updates deferred to reconciliation.",
	})
)

// RegisterCacheMetrics экспортирует счетчики кэша объявлений.
func RegisterCacheMetrics(stats func() cache.Stats) {
	counter := func(name, help string, value func(cache.Stats) uint64) {
		promauto.NewCounterFunc(prometheus.CounterOpts{
			Namespace: "marketplace",
			Subsystem: "product_cache",
			Name:      name,
			Help:      help,
		}, func() float64 { return float64(value(stats())) })
	}

	counter("hits_total", "Total number of product cache hits.", func(s cache.Stats) uint64 { return s.Hits })
	counter("misses_total", "Total number of product cache misses.", func(s cache.Stats) uint64 { return s.Misses })
	counter("evictions_total", "Total number of evicted product cache entries.", func(s cache.Stats) uint64 { return s.Evictions })

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "marketplace",
		Subsystem: "product_cache",
		Name:      "entries",
		Help:      "Current number of cached products.",
	}, func() float64 { return float64(stats().Len) })
}
