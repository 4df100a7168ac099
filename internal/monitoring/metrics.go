// Package monitoring exposes Prometheus metrics for the ticketing flow.
package monitoring

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Successfully committed checkouts",
		},
	)

	checkoutFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_failures_total",
			Help: "Failed checkouts by reason",
		},
		[]string{"reason"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)
)

// OrderCreated records one committed checkout.
func OrderCreated() {
	ordersCreated.Inc()
}

// CheckoutFailed records a failed checkout. Reason should be one of a
// small fixed set (validation, slot_not_found, capacity, category_not_found,
// storage) to keep cardinality bounded.
func CheckoutFailed(reason string) {
	checkoutFailures.WithLabelValues(reason).Inc()
}

// RequestDuration returns Echo middleware that observes request latency
// per registered route.
func RequestDuration() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			httpDuration.WithLabelValues(c.Path(), strconv.Itoa(status)).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
