// Package ledger implements the ordered record of individual spends within
// the active budget period.
package ledger

import (
	"errors"
	"fmt"

	"github.com/buckwheat-app/backend/internal/money"
	"github.com/buckwheat-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
)

// ErrNotFound is returned when a spend record does not exist.
var ErrNotFound = errors.New("there is no spend record")

// SpendRecord is one spend. It is immutable once created except for removal.
type SpendRecord struct {
	ID      uuid.UUID   `json:"id"`
	Amount  money.Money `json:"amount"`
	Date    types.Day   `json:"date"`
	Comment string      `json:"comment,omitempty"`
}

// Ledger is an ordered sequence of spend records. Insertion order is
// significant for display; all aggregations are pure functions of the current
// contents.
type Ledger struct {
	records []SpendRecord

	// onChange is invoked with a copy of the records after every append or
	// removal. Set by the engine, may be nil.
	onChange func([]SpendRecord)
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// OnChange sets the callback fired after every append or removal.
func (l *Ledger) OnChange(fn func([]SpendRecord)) {
	l.onChange = fn
}

// Append adds a record to the end of the ledger.
func (l *Ledger) Append(record SpendRecord) {
	l.records = append(l.records, record)
	l.notify()
}

// Remove deletes the record with the given id, returning the removed record.
func (l *Ledger) Remove(id uuid.UUID) (SpendRecord, error) {
	for i, record := range l.records {
		if record.ID == id {
			l.records = append(l.records[:i], l.records[i+1:]...)
			l.notify()
			return record, nil
		}
	}

	return SpendRecord{}, fmt.Errorf("%w with id %s", ErrNotFound, id)
}

// Records returns a copy of all records in insertion order.
func (l *Ledger) Records() []SpendRecord {
	records := make([]SpendRecord, len(l.records))
	copy(records, l.records)
	return records
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// TotalSpent sums all records.
func (l *Ledger) TotalSpent() money.Money {
	sum := money.Zero()
	for _, record := range l.records {
		sum = sum.Add(record.Amount)
	}

	return sum
}

// SpentOn sums the records of one calendar date.
func (l *Ledger) SpentOn(day types.Day) money.Money {
	sum := money.Zero()
	for _, record := range l.records {
		if record.Date.Equal(day) {
			sum = sum.Add(record.Amount)
		}
	}

	return sum
}

// TotalBetween sums the records with from <= date <= to.
func (l *Ledger) TotalBetween(from, to types.Day) money.Money {
	sum := money.Zero()
	for _, record := range l.records {
		if record.Date.Before(from) || record.Date.After(to) {
			continue
		}
		sum = sum.Add(record.Amount)
	}

	return sum
}

// Search returns the records whose comment matches a glob pattern.
func (l *Ledger) Search(pattern string) []SpendRecord {
	matches := make([]SpendRecord, 0)
	for _, record := range l.records {
		if glob.Glob(pattern, record.Comment) {
			matches = append(matches, record)
		}
	}

	return matches
}

func (l *Ledger) notify() {
	if l.onChange != nil {
		l.onChange(l.Records())
	}
}
