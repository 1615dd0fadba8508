package models

import (
	"encoding/json"
	"strings"

	"github.com/buckwheat-app/backend/internal/money"
	"github.com/buckwheat-app/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Spend is one persisted spend record within a period.
type Spend struct {
	DefaultModel
	Period   Period      `json:"-"`
	PeriodID uuid.UUID   `json:"periodId"`
	Date     types.Day   `json:"date"`
	Amount   money.Money `json:"amount" gorm:"type:DECIMAL(20,2)"`
	Comment  string      `json:"comment"`
}

func (s *Spend) BeforeCreate(tx *gorm.DB) error {
	_ = s.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Spend)
	return s.checkIntegrity(tx, *toSave)
}

func (s *Spend) BeforeSave(_ *gorm.DB) error {
	if !s.Amount.IsPositive() {
		return ErrSpendAmountNotPositive
	}

	s.Comment = strings.TrimSpace(s.Comment)
	return nil
}

// checkIntegrity verifies that the period the spend references exists.
func (s *Spend) checkIntegrity(tx *gorm.DB, toSave Spend) error {
	return tx.First(&Period{}, toSave.PeriodID).Error
}

// Returns all spends on this instance for export, including soft-deleted ones.
func (Spend) Export() (json.RawMessage, error) {
	var spends []Spend
	err := DB.Unscoped().Where(&Spend{}).Find(&spends).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&spends)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}
