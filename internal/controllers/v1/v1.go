// Package v1 implements the REST presentation adapter around the budget
// engine. Handlers never mutate engine state directly, they go through the
// engine's operations so that signals and persistence stay consistent.
package v1

import (
	"sync"

	"github.com/buckwheat-app/backend/internal/engine"
	"github.com/buckwheat-app/backend/internal/types"
	"github.com/buckwheat-app/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// Controller bundles the dependencies of the v1 handlers.
type Controller struct {
	Engine *engine.Engine
	Locale language.Tag

	// Today returns the current calendar day. Overridable for tests.
	Today func() types.Day

	// The engine is single-threaded and expects its operations to arrive as
	// discrete sequential events. Handlers run on concurrent request
	// goroutines, so every engine access holds this mutex.
	mu sync.Mutex
}

func NewController(e *engine.Engine, locale language.Tag) *Controller {
	return &Controller{
		Engine: e,
		Locale: locale,
		Today:  types.Today,
	}
}

// RegisterRoutes registers all v1 routes on the passed group.
func (co *Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterPeriodRoutes(r.Group("/period"))
	co.RegisterSpendRoutes(r.Group("/spends"))
	co.RegisterBudgetRoutes(r.Group("/budget"))
	co.RegisterParseRoutes(r.Group("/parse"))
	co.RegisterExportRoutes(r.Group("/export"))
}

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type Pagination struct {
	Count  int  `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int  `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int  `json:"total" example:"87"`  // The total number of resources matching the query
}
