// Package money implements the fixed-precision monetary amount used across
// the backend.
//
// Money wraps shopspring decimals the same way the uuid package wraps its
// upstream type: the embedded value keeps JSON and SQL behaviour, the wrapper
// enforces the amount policy of two fractional digits with half-up rounding
// on every operation that can introduce more precision.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/buckwheat-app/backend/internal/amount"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Scale is the fixed number of fractional digits for all amounts.
const Scale = 2

// ErrParse is returned when text cannot be converted into an amount.
var ErrParse = errors.New("text is not a valid amount")

// Money is an immutable amount with two fractional digits.
type Money struct {
	decimal.Decimal
}

// Zero returns the zero amount.
func Zero() Money {
	return Money{decimal.Zero}
}

// New returns a Money for a decimal, rounded to scale.
func New(d decimal.Decimal) Money {
	return Money{d.Round(Scale)}
}

// FromFloat returns a Money for a float, rounded to scale.
func FromFloat(f float64) Money {
	return New(decimal.NewFromFloat(f))
}

// FromString returns a Money for a plain numeric string such as "12.34".
func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero(), fmt.Errorf("%w: %q", ErrParse, s)
	}

	return New(d), nil
}

// FromText converts free-form numeric text in a locale into a Money.
//
// It fails when the text contains no digits or more than one decimal
// separator. Partial input such as a trailing separator is tolerated by
// treating the fractional part as absent.
func FromText(raw string, tag language.Tag) (Money, error) {
	trimmed := strings.TrimSpace(raw)

	if !strings.ContainsAny(trimmed, "0123456789") {
		return Zero(), fmt.Errorf("%w: no digits in %q", ErrParse, raw)
	}

	separators := string(amount.Separator(tag)) + ".,"
	count := 0
	for _, r := range trimmed {
		if strings.ContainsRune(separators, r) {
			count++
		}
	}
	if count > 1 {
		return Zero(), fmt.Errorf("%w: more than one decimal separator in %q", ErrParse, raw)
	}

	return FromString(amount.Parse(trimmed, tag).Join(true))
}

// Add returns m + n.
func (m Money) Add(n Money) Money {
	return New(m.Decimal.Add(n.Decimal))
}

// Sub returns m - n.
func (m Money) Sub(n Money) Money {
	return New(m.Decimal.Sub(n.Decimal))
}

// Mul returns m multiplied by an integer scalar.
func (m Money) Mul(scalar int64) Money {
	return New(m.Decimal.Mul(decimal.NewFromInt(scalar)))
}

// Div returns m divided by an integer scalar, rounded half-up to scale.
func (m Money) Div(scalar int64) Money {
	return Money{m.Decimal.DivRound(decimal.NewFromInt(scalar), Scale)}
}

// Cmp compares m and n, returning -1, 0 or 1.
func (m Money) Cmp(n Money) int {
	return m.Decimal.Cmp(n.Decimal)
}

// Equal reports whether m and n are the same amount.
func (m Money) Equal(n Money) bool {
	return m.Decimal.Equal(n.Decimal)
}

// GreaterThan reports whether m is larger than n.
func (m Money) GreaterThan(n Money) bool {
	return m.Decimal.GreaterThan(n.Decimal)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m.Decimal.IsPositive()
}

// Round returns the amount rounded half-up to scale. Values read from the
// database or JSON input may carry more digits than the policy allows.
func (m Money) Round() Money {
	return New(m.Decimal)
}

// String returns the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.Decimal.StringFixed(Scale)
}

// Display returns the amount with trailing zeros stripped, the format used
// to prefill input fields.
func (m Money) Display() string {
	s := m.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	return s
}
