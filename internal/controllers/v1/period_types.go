package v1

import (
	"github.com/buckwheat-app/backend/internal/engine"
	"github.com/buckwheat-app/backend/internal/types"
)

type PeriodEditable struct {
	// The total budget as entered by the user, parsed with the configured
	// locale's decimal separator.
	TotalBudget string `json:"totalBudget" example:"800,00"`

	// Last day of the period. Omit for an open-ended period.
	FinishDate *types.Day `json:"finishDate" example:"2022-03-10"`
}

// Period is the API representation of the active period.
type Period struct {
	StartDate   types.Day  `json:"startDate" example:"2022-03-07"`
	FinishDate  *types.Day `json:"finishDate" example:"2022-03-10"`
	TotalBudget string     `json:"totalBudget" example:"800.00"`
	Length      int        `json:"length" example:"4"` // Inclusive day count, 0 when open-ended
}

func newPeriod(model engine.Period) Period {
	return Period{
		StartDate:   model.StartDate,
		FinishDate:  model.FinishDate,
		TotalBudget: model.TotalBudget.String(),
		Length:      model.Length(),
	}
}

type PeriodResponse struct {
	Data  *Period `json:"data"`                                      // The active period
	Error *string `json:"error" example:"there is no active period"` // The error, if any occurred
}

// Suggestion is the prefill for configuring the next period: the unspent
// rest of the current budget and a finish date that gives the next period
// the same length as the current one.
type Suggestion struct {
	RestBudget string     `json:"restBudget" example:"250.00"`
	Display    string     `json:"display" example:"250"`
	FinishDate *types.Day `json:"finishDate" example:"2022-03-14"`
}

type SuggestionResponse struct {
	Data  *Suggestion `json:"data"`                                                     // The suggestion
	Error *string     `json:"error" example:"no budget period has been configured yet"` // The error, if any occurred
}
