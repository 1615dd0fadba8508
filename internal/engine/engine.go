// Package engine implements the daily budget recalculation core.
//
// The engine is a synchronous, single-threaded state machine. It performs no
// I/O itself: persistence happens through the Store collaborator and is
// fire-and-forget, presentation code subscribes to the listener surface in
// listeners.go.
package engine

import (
	"errors"
	"fmt"

	"github.com/buckwheat-app/backend/internal/ledger"
	"github.com/buckwheat-app/backend/internal/money"
	"github.com/buckwheat-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// State is the lifecycle state of the engine.
type State string

const (
	StateNoPeriod      State = "NO_PERIOD"
	StateNormal        State = "NORMAL"
	StateDayRolledOver State = "DAY_ROLLED_OVER"
	StatePeriodExpired State = "PERIOD_EXPIRED"
)

var (
	ErrInvalidState           = errors.New("operation is not allowed in the current state")
	ErrBudgetNotPositive      = errors.New("the total budget must be larger than zero")
	ErrFinishBeforeStart      = errors.New("the finish date must not be before the start date")
	ErrAmountNotPositive      = errors.New("spend amounts must be larger than zero")
	ErrSpendBeforePeriod      = errors.New("the spend date falls before the period start")
	ErrNoPeriodEverConfigured = errors.New("no budget period has been configured yet")
)

// Period is one active wallet span.
type Period struct {
	StartDate   types.Day   `json:"startDate"`
	FinishDate  *types.Day  `json:"finishDate"` // nil for open-ended single-day mode
	TotalBudget money.Money `json:"totalBudget"`
}

// Length returns the inclusive day count of the period, 0 when open-ended.
func (p Period) Length() int {
	if p.FinishDate == nil {
		return 0
	}

	return types.CountDays(p.StartDate, *p.FinishDate)
}

// Snapshot is the persisted state needed to resume across restarts. The
// daily budget is not part of it since it is always derived.
type Snapshot struct {
	Period       *Period              `json:"period"`
	LastKnownDay types.Day            `json:"lastKnownDay"`
	Records      []ledger.SpendRecord `json:"records"`
}

// Store is the persistence collaborator. Save must not block the caller;
// implementations serialize writes through a single writer.
type Store interface {
	Load() (*Snapshot, error)
	Save(Snapshot)
}

// Status is the observable engine state.
type Status struct {
	State        State       `json:"state"`
	Period       *Period     `json:"period"`
	SpentTotal   money.Money `json:"spentTotal"`
	SpentToday   money.Money `json:"spentToday"`
	DailyBudget  money.Money `json:"dailyBudget"`
	LastKnownDay types.Day   `json:"lastKnownDay"`
}

// Suggestion is the prefill for reconfiguring a wallet: the unspent rest of
// the current budget and a finish date giving the new period the same length.
type Suggestion struct {
	RestBudget money.Money `json:"restBudget"`
	Display    string      `json:"display"`
	FinishDate *types.Day  `json:"finishDate"`
}

// Engine is the stateful recalculation core.
type Engine struct {
	spends *ledger.Ledger
	store  Store // may be nil

	state        State
	period       *Period
	spentTotal   money.Money
	spentToday   money.Money
	dailyBudget  money.Money
	lastKnownDay types.Day

	// setupSignaled dedupes the budget-setup signal: it fires once per entry
	// into NO_PERIOD or PERIOD_EXPIRED, not on every resume.
	setupSignaled bool

	listeners listenerRegistry
}

// New returns an engine without an active period. The store may be nil for
// purely in-memory use.
func New(store Store) *Engine {
	e := &Engine{
		spends:      ledger.New(),
		store:       store,
		state:       StateNoPeriod,
		spentTotal:  money.Zero(),
		spentToday:  money.Zero(),
		dailyBudget: money.Zero(),
	}

	e.spends.OnChange(e.listeners.emitLedgerChanged)
	return e
}

// Ledger returns the engine's spend ledger.
func (e *Engine) Ledger() *ledger.Ledger {
	return e.spends
}

// Status returns the observable engine state.
func (e *Engine) Status() Status {
	return Status{
		State:        e.state,
		Period:       e.periodCopy(),
		SpentTotal:   e.spentTotal,
		SpentToday:   e.spentToday,
		DailyBudget:  e.dailyBudget,
		LastKnownDay: e.lastKnownDay,
	}
}

// Restore rebuilds the engine state from a snapshot. All derived values are
// recomputed, only period, records and the last known day are trusted.
func (e *Engine) Restore(snapshot Snapshot) {
	for _, record := range snapshot.Records {
		e.spends.Append(record)
	}

	if snapshot.Period == nil {
		return
	}

	period := *snapshot.Period
	e.period = &period
	e.lastKnownDay = snapshot.LastKnownDay
	if e.lastKnownDay.IsZero() {
		e.lastKnownDay = period.StartDate
	}

	e.state = StateNormal
	e.recompute(e.lastKnownDay)

	log.Debug().
		Stringer("startDate", period.StartDate).
		Str("dailyBudget", e.dailyBudget.String()).
		Msg("engine state restored")
}

// Configure replaces the active period with a new one starting today.
//
// The ledger is deliberately left untouched so that spend history stays
// auditable across reconfigurations; callers that want a clean slate remove
// records explicitly.
func (e *Engine) Configure(totalBudget money.Money, finishDate *types.Day, today types.Day) error {
	if !totalBudget.IsPositive() {
		return ErrBudgetNotPositive
	}

	if finishDate != nil && finishDate.Before(today) {
		return fmt.Errorf("%w: finish %s, start %s", ErrFinishBeforeStart, finishDate, today)
	}

	e.period = &Period{
		StartDate:   today,
		FinishDate:  finishDate,
		TotalBudget: totalBudget.Round(),
	}
	e.lastKnownDay = today
	e.state = StateNormal
	e.setupSignaled = false

	e.recompute(today)
	e.listeners.emitBudgetChanged(e.dailyBudget)
	e.persist()

	log.Info().
		Stringer("startDate", today).
		Str("totalBudget", e.period.TotalBudget.String()).
		Str("dailyBudget", e.dailyBudget.String()).
		Msg("period configured")

	return nil
}

// RegisterSpend appends a spend for today and reallocates the remaining
// budget over the remaining days.
func (e *Engine) RegisterSpend(amount money.Money, today types.Day, comment string) (ledger.SpendRecord, error) {
	if e.state != StateNormal {
		return ledger.SpendRecord{}, fmt.Errorf("%w: %s", ErrInvalidState, e.state)
	}

	if !amount.IsPositive() {
		return ledger.SpendRecord{}, ErrAmountNotPositive
	}

	if today.Before(e.period.StartDate) {
		return ledger.SpendRecord{}, fmt.Errorf("%w: %s", ErrSpendBeforePeriod, today)
	}

	record := ledger.SpendRecord{
		ID:      uuid.New(),
		Amount:  amount.Round(),
		Date:    today,
		Comment: comment,
	}
	e.spends.Append(record)
	e.recompute(today)

	e.listeners.emitBudgetChanged(e.dailyBudget)
	e.persist()

	return record, nil
}

// RemoveSpend deletes a spend record and reallocates the freed amount.
func (e *Engine) RemoveSpend(id uuid.UUID, today types.Day) error {
	if e.state != StateNormal {
		return fmt.Errorf("%w: %s", ErrInvalidState, e.state)
	}

	_, err := e.spends.Remove(id)
	if err != nil {
		return err
	}

	e.recompute(today)

	e.listeners.emitBudgetChanged(e.dailyBudget)
	e.persist()

	return nil
}

// CheckDayRollover compares today to the last known day and reallocates the
// remaining budget when the calendar has advanced. It is idempotent: calling
// it twice with the same day is a no-op and emits no duplicate signals.
//
// It returns the state the engine is in afterwards.
func (e *Engine) CheckDayRollover(today types.Day) State {
	if e.state == StateNoPeriod || e.state == StatePeriodExpired {
		e.signalSetupRequired()
		return e.state
	}

	if !e.lastKnownDay.Before(today) {
		return e.state
	}

	if e.period.FinishDate != nil && today.After(*e.period.FinishDate) {
		e.state = StatePeriodExpired
		e.signalSetupRequired()
		e.persist()

		log.Info().
			Stringer("finishDate", *e.period.FinishDate).
			Stringer("today", today).
			Msg("period expired")

		return e.state
	}

	e.state = StateDayRolledOver

	// Each elapsed day's unspent allowance folds into the next day. Since
	// intermediate days change neither the remaining budget nor the
	// remaining day count, iterating the fold once per elapsed day yields
	// the same allocation as a single reallocation at today.
	e.recompute(today)
	e.lastKnownDay = today
	e.state = StateNormal

	e.listeners.emitDayAcknowledgementRequired()
	e.listeners.emitBudgetChanged(e.dailyBudget)
	e.persist()

	log.Info().
		Stringer("today", today).
		Str("dailyBudget", e.dailyBudget.String()).
		Msg("day rolled over")

	return e.state
}

// Reset discards the active period and returns the engine to NO_PERIOD.
// The ledger is kept; it belongs to the caller.
func (e *Engine) Reset() {
	e.period = nil
	e.state = StateNoPeriod
	e.spentTotal = money.Zero()
	e.spentToday = money.Zero()
	e.dailyBudget = money.Zero()
	e.lastKnownDay = types.Day{}
	e.setupSignaled = false

	e.signalSetupRequired()
	e.persist()
}

// Suggestion returns the reconfiguration prefill based on the current period.
func (e *Engine) Suggestion(today types.Day) (Suggestion, error) {
	if e.period == nil {
		return Suggestion{}, ErrNoPeriodEverConfigured
	}

	rest := e.period.TotalBudget.Sub(e.spentTotal)
	suggestion := Suggestion{
		RestBudget: rest,
		Display:    rest.Display(),
	}

	if length := e.period.Length(); length > 0 {
		finish := today.AddDays(length - 1)
		suggestion.FinishDate = &finish
	}

	return suggestion, nil
}

// AllocateDaily spreads the remaining budget over the remaining days of a
// period, rounded half-up to two digits. With no finish date the whole
// remainder is today's budget. Rounding drift accumulates into the final
// day and is bounded by one cent per period.
func AllocateDaily(remaining money.Money, finishDate *types.Day, today types.Day) money.Money {
	if finishDate == nil {
		return remaining
	}

	days := types.CountDays(today, *finishDate)
	if days < 1 {
		days = 1
	}

	return remaining.Div(int64(days))
}

// recompute derives the daily budget as of the given day, clamped at zero.
func (e *Engine) recompute(today types.Day) {
	e.spentTotal = e.spends.TotalBetween(e.period.StartDate, today)
	e.spentToday = e.spends.SpentOn(today)
	e.reallocate(today)
}

func (e *Engine) reallocate(today types.Day) {
	remaining := e.period.TotalBudget.Sub(e.spentTotal)
	daily := AllocateDaily(remaining, e.period.FinishDate, today)
	if daily.IsNegative() {
		daily = money.Zero()
	}

	e.dailyBudget = daily
}

func (e *Engine) signalSetupRequired() {
	if e.setupSignaled {
		return
	}

	e.setupSignaled = true
	e.listeners.emitBudgetSetupRequired()
}

func (e *Engine) persist() {
	if e.store == nil {
		return
	}

	e.store.Save(Snapshot{
		Period:       e.periodCopy(),
		LastKnownDay: e.lastKnownDay,
		Records:      e.spends.Records(),
	})
}

func (e *Engine) periodCopy() *Period {
	if e.period == nil {
		return nil
	}

	period := *e.period
	if e.period.FinishDate != nil {
		finish := *e.period.FinishDate
		period.FinishDate = &finish
	}

	return &period
}
