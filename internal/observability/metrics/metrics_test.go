package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/matcha-inventory/internal/domain/inventory"
)

func TestHTTPMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(HTTPMetricsMiddleware())
	r.GET("/api/flavors/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/flavors/:id", "204"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/flavors/abc", nil))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/flavors/:id", "204"))

	assert.Equal(t, before+1, after)
}

func TestMutationsCounter(t *testing.T) {
	before := testutil.ToFloat64(mutationsTotal.WithLabelValues("utensil", inventory.ActionCreated))
	Mutations{}.Observe(context.Background(), inventory.Event{Kind: "Utensil", Action: inventory.ActionCreated})
	after := testutil.ToFloat64(mutationsTotal.WithLabelValues("utensil", inventory.ActionCreated))
	assert.Equal(t, before+1, after)
}

func TestSetStorageBackend(t *testing.T) {
	SetStorageBackend("memory")
	assert.Equal(t, 1.0, testutil.ToFloat64(storageBackend.WithLabelValues("memory")))
	SetStorageBackend("mongodb")
	assert.Equal(t, 1, testutil.CollectAndCount(storageBackend))
}
