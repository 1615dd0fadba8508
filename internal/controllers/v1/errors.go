package v1

import (
	"errors"
	"net/http"

	"github.com/buckwheat-app/backend/internal/engine"
	"github.com/buckwheat-app/backend/internal/ledger"
	"github.com/buckwheat-app/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the request body must not be empty"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) ||
		errors.Is(err, ledger.ErrNotFound) ||
		errors.Is(err, engine.ErrNoPeriodEverConfigured) ||
		errors.Is(err, errNoActivePeriod) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errNoActivePeriod = errors.New("there is no active period")
	errOrderInvalid   = errors.New("the order parameter must be one of 'asc' and 'desc'")
	errDatesSwapped   = errors.New("the from date must not be after the until date")
	errBudgetMissing  = errors.New("the totalBudget field must be set")
	errAmountMissing  = errors.New("the amount field must be set")
	errInputMissing   = errors.New("the input field must be set")
)
