package models

import (
	"encoding/json"
	"fmt"

	"github.com/buckwheat-app/backend/internal/money"
	"github.com/buckwheat-app/backend/internal/types"
	"gorm.io/gorm"
)

// Period represents one configured wallet span: a start date, an optional
// finish date and the total budget to spend between them. Exactly one
// period is active at a time; superseded periods are soft-deleted and kept
// for history.
type Period struct {
	DefaultModel
	StartDate    types.Day   `json:"startDate"`
	FinishDate   *types.Day  `json:"finishDate"`
	TotalBudget  money.Money `json:"totalBudget" gorm:"type:DECIMAL(20,2)"`
	LastKnownDay types.Day   `json:"lastKnownDay"`
}

func (p *Period) BeforeSave(_ *gorm.DB) error {
	if !p.TotalBudget.IsPositive() {
		return ErrPeriodBudgetNotPositive
	}

	if p.FinishDate != nil && p.FinishDate.Before(p.StartDate) {
		return fmt.Errorf("%w: finish %s, start %s", ErrPeriodFinishBeforeStart, p.FinishDate, p.StartDate)
	}

	return nil
}

// Returns all periods on this instance for export, including soft-deleted ones.
func (Period) Export() (json.RawMessage, error) {
	var periods []Period
	err := DB.Unscoped().Where(&Period{}).Find(&periods).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&periods)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}
