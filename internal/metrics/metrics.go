package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers the few numbers worth watching: request volume and the
// mutation rate of each data store.
type Collector struct {
	httpRequests *prometheus.CounterVec
	httpLatency  prometheus.Histogram
	storeOps     *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rosered_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "path", "status"}),
		httpLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rosered_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rosered_store_operations_total",
			Help: "Mutating store operations by store and operation.",
		}, []string{"store", "op"}),
	}

	reg.MustRegister(c.httpRequests, c.httpLatency, c.storeOps)
	return c
}

func (c *Collector) RecordStoreOp(store, op string) {
	if c == nil {
		return
	}
	c.storeOps.WithLabelValues(store, op).Inc()
}

// Middleware counts every request after the handler chain has finished.
func (c *Collector) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			if c == nil {
				return next(ec)
			}
			start := time.Now()
			err := next(ec)
			status := ec.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}
			c.httpRequests.WithLabelValues(ec.Request().Method, ec.Path(), strconv.Itoa(status)).Inc()
			c.httpLatency.Observe(time.Since(start).Seconds())
			return err
		}
	}
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
