package v1

import (
	"github.com/buckwheat-app/backend/internal/engine"
	"github.com/buckwheat-app/backend/internal/types"
)

// Budget is the observable engine state: what the user may spend today and
// how much of the period budget is gone.
type Budget struct {
	State        engine.State `json:"state" example:"NORMAL"`
	Period       *Period      `json:"period"`
	DailyBudget  string       `json:"dailyBudget" example:"76.67"`
	Display      string       `json:"display" example:"76.67"` // Daily budget with trailing zeros stripped
	SpentToday   string       `json:"spentToday" example:"50.00"`
	SpentTotal   string       `json:"spentTotal" example:"50.00"`
	LastKnownDay *types.Day   `json:"lastKnownDay" example:"2022-03-08"`
}

func newBudget(status engine.Status) Budget {
	budget := Budget{
		State:       status.State,
		DailyBudget: status.DailyBudget.String(),
		Display:     status.DailyBudget.Display(),
		SpentToday:  status.SpentToday.String(),
		SpentTotal:  status.SpentTotal.String(),
	}

	if status.Period != nil {
		period := newPeriod(*status.Period)
		budget.Period = &period
	}

	if !status.LastKnownDay.IsZero() {
		day := status.LastKnownDay
		budget.LastKnownDay = &day
	}

	return budget
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`  // The budget state
	Error *string `json:"error"` // The error, if any occurred
}

type RolloverEditable struct {
	// The current day from the client's perspective. Defaults to the server
	// date when unset.
	Today *types.Day `json:"today" example:"2022-03-08"`
}

// Rollover is the result of a day rollover check: the state the engine
// settled in and the signals the check emitted.
type Rollover struct {
	State   engine.State `json:"state" example:"NORMAL"`
	Budget  Budget       `json:"budget"`
	Signals []string     `json:"signals" example:"requireDayAcknowledgement,budgetChanged"`
}

type RolloverResponse struct {
	Data  *Rollover `json:"data"`  // The rollover result
	Error *string   `json:"error"` // The error, if any occurred
}
