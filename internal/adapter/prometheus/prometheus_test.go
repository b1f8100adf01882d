package prometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusAdapterWithRegisterer(reg)

	router := gin.New()
	router.GET("/categories/:id", func(c *gin.Context) {
		start := time.Now()
		defer metrics.RecordMetrics(c, start)
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/categories/abc", nil)
		router.ServeHTTP(w, req)
	}

	got := testutil.ToFloat64(metrics.requests.WithLabelValues("/categories/:id", "GET", "200"))
	if got != 3 {
		t.Errorf("requests counter = %v, want 3", got)
	}
	if n := testutil.CollectAndCount(metrics.duration); n != 1 {
		t.Errorf("duration series = %d, want 1", n)
	}
}
