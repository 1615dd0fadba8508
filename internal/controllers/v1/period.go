package v1

import (
	"net/http"

	"github.com/buckwheat-app/backend/internal/httputil"
	"github.com/buckwheat-app/backend/internal/money"
	"github.com/gin-gonic/gin"
)

func (co *Controller) RegisterPeriodRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsPeriod)
		r.GET("", co.GetPeriod)
		r.POST("", co.CreatePeriod)
		r.DELETE("", co.DeletePeriod)
	}
	{
		r.OPTIONS("/suggestion", co.OptionsPeriodSuggestion)
		r.GET("/suggestion", co.GetPeriodSuggestion)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Period
// @Success		204
// @Router			/v1/period [options]
func (co *Controller) OptionsPeriod(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Period
// @Success		204
// @Router			/v1/period/suggestion [options]
func (co *Controller) OptionsPeriodSuggestion(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get period
// @Description	Returns the active period
// @Tags			Period
// @Produce		json
// @Success		200	{object}	PeriodResponse
// @Failure		404	{object}	PeriodResponse
// @Router			/v1/period [get]
func (co *Controller) GetPeriod(c *gin.Context) {
	co.mu.Lock()
	defer co.mu.Unlock()

	periodStatus := co.Engine.Status()
	if periodStatus.Period == nil {
		e := errNoActivePeriod.Error()
		c.JSON(status(errNoActivePeriod), PeriodResponse{Error: &e})
		return
	}

	data := newPeriod(*periodStatus.Period)
	c.JSON(http.StatusOK, PeriodResponse{Data: &data})
}

// @Summary		Configure period
// @Description	Configures a new period starting today, replacing the active one
// @Tags			Period
// @Produce		json
// @Success		201		{object}	PeriodResponse
// @Failure		400		{object}	PeriodResponse
// @Param			period	body		PeriodEditable	true	"Period"
// @Router			/v1/period [post]
func (co *Controller) CreatePeriod(c *gin.Context) {
	co.mu.Lock()
	defer co.mu.Unlock()

	var editable PeriodEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), PeriodResponse{Error: &e})
		return
	}

	if editable.TotalBudget == "" {
		e := errBudgetMissing.Error()
		c.JSON(status(errBudgetMissing), PeriodResponse{Error: &e})
		return
	}

	totalBudget, err := money.FromText(editable.TotalBudget, co.Locale)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PeriodResponse{Error: &e})
		return
	}

	err = co.Engine.Configure(totalBudget, editable.FinishDate, co.Today())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PeriodResponse{Error: &e})
		return
	}

	data := newPeriod(*co.Engine.Status().Period)
	c.JSON(http.StatusCreated, PeriodResponse{Data: &data})
}

// @Summary		Delete period
// @Description	Discards the active period. Spend history is kept.
// @Tags			Period
// @Success		204
// @Router			/v1/period [delete]
func (co *Controller) DeletePeriod(c *gin.Context) {
	co.mu.Lock()
	defer co.mu.Unlock()

	co.Engine.Reset()
	c.Status(http.StatusNoContent)
}

// @Summary		Get suggestion
// @Description	Returns the prefill values for configuring the next period
// @Tags			Period
// @Produce		json
// @Success		200	{object}	SuggestionResponse
// @Failure		404	{object}	SuggestionResponse
// @Router			/v1/period/suggestion [get]
func (co *Controller) GetPeriodSuggestion(c *gin.Context) {
	co.mu.Lock()
	defer co.mu.Unlock()

	suggestion, err := co.Engine.Suggestion(co.Today())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SuggestionResponse{Error: &e})
		return
	}

	data := Suggestion{
		RestBudget: suggestion.RestBudget.String(),
		Display:    suggestion.Display,
		FinishDate: suggestion.FinishDate,
	}
	c.JSON(http.StatusOK, SuggestionResponse{Data: &data})
}
