package metrics

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/BruksfildServices01/matcha-inventory/internal/domain/inventory"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inventory_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	mutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_mutations_total",
		Help: "Successful inventory mutations by kind and action",
	}, []string{"kind", "action"})

	storageBackend = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "inventory_storage_backend",
		Help: "Storage backend selected at startup (1 for the active mode)",
	}, []string{"mode"})

	stockItems = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "inventory_stock_items",
		Help: "Inventory items per stock level as of the last dashboard computation",
	}, []string{"level"})

	dashboardDegraded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventory_dashboard_degraded_total",
		Help: "Dashboard requests answered with the empty fallback summary",
	})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// SetStorageBackend marks mode as the active backend.
func SetStorageBackend(mode string) {
	storageBackend.Reset()
	storageBackend.WithLabelValues(mode).Set(1)
}

func SetStockLevels(in, low, out int) {
	stockItems.WithLabelValues("in_stock").Set(float64(in))
	stockItems.WithLabelValues("low_stock").Set(float64(low))
	stockItems.WithLabelValues("out_of_stock").Set(float64(out))
}

func IncDashboardDegraded() {
	dashboardDegraded.Inc()
}

// Mutations counts inventory mutations.
type Mutations struct{}

func (Mutations) Observe(_ context.Context, ev inventory.Event) {
	mutationsTotal.WithLabelValues(strings.ToLower(ev.Kind), ev.Action).Inc()
}

var _ inventory.Observer = Mutations{}
