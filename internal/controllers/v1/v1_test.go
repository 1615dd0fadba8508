package v1_test

import (
	"testing"

	v1 "github.com/buckwheat-app/backend/internal/controllers/v1"
	"github.com/buckwheat-app/backend/internal/engine"
	"github.com/buckwheat-app/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// testApp returns a controller without persistence and a router with all v1
// routes. The controller's clock starts at 2022-03-07 and can be advanced by
// assigning co.Today.
func testApp(t *testing.T) (*v1.Controller, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	co := v1.NewController(engine.New(nil), language.AmericanEnglish)
	setDay(co, types.NewDay(2022, 3, 7))

	r := gin.New()
	co.RegisterRoutes(r.Group("/v1"))

	return co, r
}

func setDay(co *v1.Controller, day types.Day) {
	co.Today = func() types.Day {
		return day
	}
}
