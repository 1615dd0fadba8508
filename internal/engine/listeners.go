package engine

import (
	"github.com/buckwheat-app/backend/internal/ledger"
	"github.com/buckwheat-app/backend/internal/money"
)

// Unsubscribe removes a previously registered listener. Calling it more than
// once is harmless.
type Unsubscribe func()

// listenerRegistry fans engine events out to subscribers. Registration is
// decoupled from any platform lifecycle: whoever subscribes also holds the
// unsubscribe handle.
type listenerRegistry struct {
	next          int
	ledgerChanged map[int]func([]ledger.SpendRecord)
	budgetChanged map[int]func(money.Money)
	setupRequired map[int]func()
	dayAckPending map[int]func()
}

// OnLedgerChanged registers a listener fired after every append or removal
// with a copy of the current records.
func (e *Engine) OnLedgerChanged(fn func([]ledger.SpendRecord)) Unsubscribe {
	if e.listeners.ledgerChanged == nil {
		e.listeners.ledgerChanged = make(map[int]func([]ledger.SpendRecord))
	}

	id := e.listeners.nextID()
	e.listeners.ledgerChanged[id] = fn
	return func() { delete(e.listeners.ledgerChanged, id) }
}

// OnBudgetChanged registers a listener fired with the new daily budget after
// every recomputation.
func (e *Engine) OnBudgetChanged(fn func(money.Money)) Unsubscribe {
	if e.listeners.budgetChanged == nil {
		e.listeners.budgetChanged = make(map[int]func(money.Money))
	}

	id := e.listeners.nextID()
	e.listeners.budgetChanged[id] = fn
	return func() { delete(e.listeners.budgetChanged, id) }
}

// OnRequireBudgetSetup registers a listener fired when the engine enters
// NO_PERIOD or PERIOD_EXPIRED.
func (e *Engine) OnRequireBudgetSetup(fn func()) Unsubscribe {
	if e.listeners.setupRequired == nil {
		e.listeners.setupRequired = make(map[int]func())
	}

	id := e.listeners.nextID()
	e.listeners.setupRequired[id] = fn
	return func() { delete(e.listeners.setupRequired, id) }
}

// OnRequireDayAcknowledgement registers a listener fired after a day rollover
// resolves, prompting the UI to show the new-day summary.
func (e *Engine) OnRequireDayAcknowledgement(fn func()) Unsubscribe {
	if e.listeners.dayAckPending == nil {
		e.listeners.dayAckPending = make(map[int]func())
	}

	id := e.listeners.nextID()
	e.listeners.dayAckPending[id] = fn
	return func() { delete(e.listeners.dayAckPending, id) }
}

func (r *listenerRegistry) nextID() int {
	r.next++
	return r.next
}

func (r *listenerRegistry) emitLedgerChanged(records []ledger.SpendRecord) {
	for _, fn := range r.ledgerChanged {
		fn(records)
	}
}

func (r *listenerRegistry) emitBudgetChanged(dailyBudget money.Money) {
	for _, fn := range r.budgetChanged {
		fn(dailyBudget)
	}
}

func (r *listenerRegistry) emitBudgetSetupRequired() {
	for _, fn := range r.setupRequired {
		fn()
	}
}

func (r *listenerRegistry) emitDayAcknowledgementRequired() {
	for _, fn := range r.dayAckPending {
		fn()
	}
}
