package models_test

import (
	"encoding/json"
	"testing"

	"github.com/buckwheat-app/backend/internal/models"
	"github.com/buckwheat-app/backend/internal/money"
	"github.com/buckwheat-app/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayPtr(d types.Day) *types.Day {
	return &d
}

func (suite *TestSuiteStandard) TestPeriodCreate() {
	period := suite.createTestPeriod(models.Period{
		StartDate:    types.NewDay(2022, 3, 7),
		FinishDate:   dayPtr(types.NewDay(2022, 3, 10)),
		TotalBudget:  money.FromFloat(300),
		LastKnownDay: types.NewDay(2022, 3, 7),
	})

	var reread models.Period
	require.Nil(suite.T(), models.DB.First(&reread, period.ID).Error)

	assert.True(suite.T(), reread.StartDate.Equal(types.NewDay(2022, 3, 7)))
	require.NotNil(suite.T(), reread.FinishDate)
	assert.True(suite.T(), reread.FinishDate.Equal(types.NewDay(2022, 3, 10)))
	assert.True(suite.T(), reread.TotalBudget.Equal(money.FromFloat(300)))
}

func (suite *TestSuiteStandard) TestPeriodOpenEnded() {
	period := suite.createTestPeriod(models.Period{
		StartDate:    types.NewDay(2022, 3, 7),
		TotalBudget:  money.FromFloat(100),
		LastKnownDay: types.NewDay(2022, 3, 7),
	})

	var reread models.Period
	require.Nil(suite.T(), models.DB.First(&reread, period.ID).Error)
	assert.Nil(suite.T(), reread.FinishDate)
}

func (suite *TestSuiteStandard) TestPeriodValidation() {
	tests := []struct {
		name   string
		period models.Period
		err    error
	}{
		{
			"zero budget",
			models.Period{StartDate: types.NewDay(2022, 3, 7)},
			models.ErrPeriodBudgetNotPositive,
		},
		{
			"negative budget",
			models.Period{StartDate: types.NewDay(2022, 3, 7), TotalBudget: money.FromFloat(-10)},
			models.ErrPeriodBudgetNotPositive,
		},
		{
			"finish before start",
			models.Period{
				StartDate:   types.NewDay(2022, 3, 7),
				FinishDate:  dayPtr(types.NewDay(2022, 3, 1)),
				TotalBudget: money.FromFloat(100),
			},
			models.ErrPeriodFinishBeforeStart,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.period).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestPeriodExport() {
	t := suite.T()

	_ = suite.createTestPeriod(models.Period{
		StartDate:    types.NewDay(2022, 3, 7),
		TotalBudget:  money.FromFloat(100),
		LastKnownDay: types.NewDay(2022, 3, 7),
	})

	raw, err := models.Period{}.Export()
	require.Nil(t, err)

	var periods []models.Period
	require.Nil(t, json.Unmarshal(raw, &periods))
	require.Len(t, periods, 1)
}
