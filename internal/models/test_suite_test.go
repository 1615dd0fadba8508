package models_test

import (
	"log"
	"testing"

	"github.com/buckwheat-app/backend/internal/models"
	"github.com/buckwheat-app/backend/test"
	"github.com/stretchr/testify/suite"
)

type TestSuiteStandard struct {
	suite.Suite
}

// Pseudo-Test run by go test that runs the test suite.
func TestSuite(t *testing.T) {
	suite.Run(t, new(TestSuiteStandard))
}

// TearDownTest is called after each test in the suite.
func (suite *TestSuiteStandard) TearDownTest() {
	sqlDB, _ := models.DB.DB()
	sqlDB.Close()
}

// SetupTest is called before each test in the suite.
func (suite *TestSuiteStandard) SetupTest() {
	err := models.Connect(test.TmpFile(suite.T()))
	if err != nil {
		log.Fatalf("Database connection failed with: %#v", err)
	}
}

func (suite *TestSuiteStandard) createTestPeriod(period models.Period) models.Period {
	err := models.DB.Create(&period).Error
	if err != nil {
		suite.Assert().FailNow("Period could not be saved", "Error: %s, Period: %#v", err, period)
	}

	return period
}

func (suite *TestSuiteStandard) createTestSpend(spend models.Spend) models.Spend {
	err := models.DB.Create(&spend).Error
	if err != nil {
		suite.Assert().FailNow("Spend could not be saved", "Error: %s, Spend: %#v", err, spend)
	}

	return spend
}
