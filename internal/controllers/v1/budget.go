package v1

import (
	"errors"
	"net/http"

	"github.com/buckwheat-app/backend/internal/engine"
	"github.com/buckwheat-app/backend/internal/httputil"
	"github.com/buckwheat-app/backend/internal/ledger"
	"github.com/buckwheat-app/backend/internal/money"
	"github.com/gin-gonic/gin"
)

func (co *Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsBudget)
		r.GET("", co.GetBudget)
	}
	{
		r.OPTIONS("/rollover", co.OptionsBudgetRollover)
		r.POST("/rollover", co.CreateBudgetRollover)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget [options]
func (co *Controller) OptionsBudget(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget/rollover [options]
func (co *Controller) OptionsBudgetRollover(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get budget
// @Description	Returns the current budget state
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Router			/v1/budget [get]
func (co *Controller) GetBudget(c *gin.Context) {
	co.mu.Lock()
	defer co.mu.Unlock()

	data := newBudget(co.Engine.Status())
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Day rollover check
// @Description	Compares today to the last known day and reallocates the remaining budget when the calendar has advanced. Idempotent.
// @Tags			Budget
// @Produce		json
// @Success		200			{object}	RolloverResponse
// @Failure		400			{object}	RolloverResponse
// @Param			rollover	body		RolloverEditable	false	"Rollover"
// @Router			/v1/budget/rollover [post]
func (co *Controller) CreateBudgetRollover(c *gin.Context) {
	var editable RolloverEditable
	err := httputil.BindData(c, &editable)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		e := err.Error()
		c.JSON(status(err), RolloverResponse{Error: &e})
		return
	}

	today := co.Today()
	if editable.Today != nil {
		today = *editable.Today
	}

	co.mu.Lock()
	defer co.mu.Unlock()

	// Collect the signals the check emits so clients know what to show
	// without holding a subscription.
	var signals []string
	unsubscribes := []engine.Unsubscribe{
		co.Engine.OnRequireBudgetSetup(func() {
			signals = append(signals, "requireBudgetSetup")
		}),
		co.Engine.OnRequireDayAcknowledgement(func() {
			signals = append(signals, "requireDayAcknowledgement")
		}),
		co.Engine.OnBudgetChanged(func(money.Money) {
			signals = append(signals, "budgetChanged")
		}),
		co.Engine.OnLedgerChanged(func([]ledger.SpendRecord) {
			signals = append(signals, "ledgerChanged")
		}),
	}

	state := co.Engine.CheckDayRollover(today)

	for _, unsubscribe := range unsubscribes {
		unsubscribe()
	}

	data := Rollover{
		State:   state,
		Budget:  newBudget(co.Engine.Status()),
		Signals: signals,
	}
	c.JSON(http.StatusOK, RolloverResponse{Data: &data})
}
