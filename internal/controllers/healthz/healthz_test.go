package healthz_test

import (
	"net/http"
	"testing"

	"github.com/buckwheat-app/backend/internal/controllers/healthz"
	"github.com/buckwheat-app/backend/internal/models"
	"github.com/buckwheat-app/backend/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthzApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	healthz.RegisterRoutes(r.Group("/healthz"))
	return r
}

func TestGetHealthz(t *testing.T) {
	require.Nil(t, models.Connect(test.TmpFile(t)))
	r := healthzApp(t)

	recorder := test.Request(r, t, http.MethodGet, "/healthz", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)
}

func TestGetHealthzClosedDatabase(t *testing.T) {
	require.Nil(t, models.Connect(test.TmpFile(t)))
	sqlDB, err := models.DB.DB()
	require.Nil(t, err)
	require.Nil(t, sqlDB.Close())

	r := healthzApp(t)

	recorder := test.Request(r, t, http.MethodGet, "/healthz", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
}

func TestOptionsHealthz(t *testing.T) {
	r := healthzApp(t)

	recorder := test.Request(r, t, http.MethodOptions, "/healthz", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)
	assert.Equal(t, "GET", recorder.Header().Get("allow"))
}
