package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusRegistration(t *testing.T) {
	assert.Nil(t, registerPrometheusMetrics())

	// Registering twice must not fail
	assert.Nil(t, registerPrometheusMetrics())

	assert.True(t, unregisterPrometheusMetrics())
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/spends/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/spends/0626715e-9398-4e69-a191-29f48a836521", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// The URL parameter is replaced by its name to keep cardinality low
	count, err := requestCount.GetMetricWithLabelValues("200", "GET", "/spends/:id")
	assert.Nil(t, err)
	assert.NotNil(t, count)
}
