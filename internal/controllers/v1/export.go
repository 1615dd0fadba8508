package v1

import (
	"encoding/json"
	"net/http"
	"reflect"
	"time"

	"github.com/buckwheat-app/backend/internal/httputil"
	"github.com/buckwheat-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func (co *Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsExport)
		r.GET("", co.GetExport)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func (co *Controller) OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Exports all resources for the instance
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	httpError
// @Router			/v1/export [get]
func (co *Controller) GetExport(c *gin.Context) {
	resources := make(map[string]json.RawMessage)

	for _, model := range models.Registry {
		b, err := model.Export()
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		resources[reflect.TypeOf(model).Name()] = b
	}

	c.JSON(http.StatusOK, ExportResponse{
		Data:         resources,
		CreationTime: time.Now(),
	})
}

type ExportResponse struct {
	Data         map[string]json.RawMessage `json:"data"`         // The exported resources by model name
	CreationTime time.Time                  `json:"creationTime"` // Time the export was created
}
