package models_test

import (
	"testing"

	"github.com/buckwheat-app/backend/internal/models"
	"github.com/buckwheat-app/backend/internal/money"
	"github.com/buckwheat-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSpendCreate() {
	period := suite.createTestPeriod(models.Period{
		StartDate:    types.NewDay(2022, 3, 7),
		TotalBudget:  money.FromFloat(300),
		LastKnownDay: types.NewDay(2022, 3, 7),
	})

	spend := suite.createTestSpend(models.Spend{
		PeriodID: period.ID,
		Date:     types.NewDay(2022, 3, 7),
		Amount:   money.FromFloat(12.34),
		Comment:  "coffee",
	})

	var reread models.Spend
	require.Nil(suite.T(), models.DB.First(&reread, spend.ID).Error)
	assert.True(suite.T(), reread.Amount.Equal(money.FromFloat(12.34)))
	assert.Equal(suite.T(), "coffee", reread.Comment)
}

func (suite *TestSuiteStandard) TestSpendWithoutPeriod() {
	spend := models.Spend{
		PeriodID: uuid.New(),
		Date:     types.NewDay(2022, 3, 7),
		Amount:   money.FromFloat(5),
	}

	err := models.DB.Create(&spend).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestSpendAmountValidation() {
	period := suite.createTestPeriod(models.Period{
		StartDate:    types.NewDay(2022, 3, 7),
		TotalBudget:  money.FromFloat(300),
		LastKnownDay: types.NewDay(2022, 3, 7),
	})

	tests := []struct {
		name   string
		amount money.Money
	}{
		{"zero", money.Zero()},
		{"negative", money.FromFloat(-1)},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			spend := models.Spend{
				PeriodID: period.ID,
				Date:     types.NewDay(2022, 3, 7),
				Amount:   tt.amount,
			}

			err := models.DB.Create(&spend).Error
			assert.ErrorIs(t, err, models.ErrSpendAmountNotPositive)
		})
	}
}

func (suite *TestSuiteStandard) TestSpendTrimWhitespace() {
	period := suite.createTestPeriod(models.Period{
		StartDate:    types.NewDay(2022, 3, 7),
		TotalBudget:  money.FromFloat(300),
		LastKnownDay: types.NewDay(2022, 3, 7),
	})

	spend := suite.createTestSpend(models.Spend{
		PeriodID: period.ID,
		Date:     types.NewDay(2022, 3, 7),
		Amount:   money.FromFloat(5),
		Comment:  "  lunch \t",
	})

	assert.Equal(suite.T(), "lunch", spend.Comment)
}
