package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the order-creation HTTP handler
	OrderCreateDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "store_order_create_latency_seconds",
		Help:    "Latency of the order creation handler",
		Buckets: prometheus.DefBuckets,
	})

	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_orders_created_total",
		Help: "Total number of orders committed",
	})

	OrderCreateFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_order_create_failures_total",
		Help: "Total number of order creations rolled back",
	})

	LoginAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_login_attempts_total",
		Help: "Login attempts by outcome",
	}, []string{"outcome"})
)

func Init() {
	prometheus.MustRegister(
		OrderCreateDuration,
		OrdersCreated,
		OrderCreateFailures,
		LoginAttempts,
	)
}
