package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrPeriodBudgetNotPositive = errors.New("the total budget must be larger than zero")
	ErrPeriodFinishBeforeStart = errors.New("the finish date must not be before the start date")
	ErrSpendAmountNotPositive  = errors.New("spend amounts must be larger than zero")
)
