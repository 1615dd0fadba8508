// Package amount converts free-form numeric text into a canonical amount
// tuple and back.
//
// The parser backs a live text input field, so it must tolerate any partial
// state the user can type through: empty strings, lone separators, stray
// grouping characters. It never fails; strict validation happens when the
// joined string is converted to a monetary value.
package amount

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FractionDigits is the number of fractional digits kept while the user is
// typing. Extra input is truncated, not rounded, so that deleting a keystroke
// restores the previous value exactly.
const FractionDigits = 2

// Parsed is the canonical representation of a partially typed amount.
type Parsed struct {
	Sign     string `json:"sign"`     // "-" or empty
	Integer  string `json:"integer"`  // integer digits, no leading zeros beyond a single "0"
	Fraction string `json:"fraction"` // up to FractionDigits fractional digits
}

// Separator returns the decimal separator for a locale.
//
// x/text does not expose the separator directly, so it is sniffed from a
// formatted probe value.
func Separator(tag language.Tag) rune {
	probe := message.NewPrinter(tag).Sprint(number.Decimal(1.1))
	for _, r := range probe {
		if r < '0' || r > '9' {
			return r
		}
	}

	return '.'
}

// Parse splits raw text on the first recognized decimal separator and strips
// everything that is not a digit from both parts.
//
// Both the locale separator and the plain dot and comma are recognized, since
// hardware keyboards produce either regardless of locale.
func Parse(raw string, tag language.Tag) Parsed {
	p := Parsed{Integer: "0"}

	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "-") {
		p.Sign = "-"
		raw = raw[1:]
	}

	integer, fraction := splitOnSeparator(raw, Separator(tag))

	p.Integer = normalizeInteger(stripNonDigits(integer))

	fraction = stripNonDigits(fraction)
	if len(fraction) > FractionDigits {
		fraction = fraction[:FractionDigits]
	}
	p.Fraction = fraction

	return p
}

// Join reassembles the tuple into a normalized numeric string using the
// canonical dot separator, suitable for both display and decimal conversion.
func (p Parsed) Join(includeFraction bool) string {
	integer := p.Integer
	if integer == "" {
		integer = "0"
	}

	if !includeFraction || p.Fraction == "" {
		return p.Sign + integer
	}

	return p.Sign + integer + "." + p.Fraction
}

// splitOnSeparator splits on the first occurrence of any recognized decimal
// separator. A trailing separator simply yields an empty fractional part.
func splitOnSeparator(s string, localeSeparator rune) (integer, fraction string) {
	separators := string(localeSeparator)
	if !strings.ContainsRune(separators, '.') {
		separators += "."
	}
	if !strings.ContainsRune(separators, ',') {
		separators += ","
	}

	if i := strings.IndexAny(s, separators); i >= 0 {
		return s[:i], s[i+1:]
	}

	return s, ""
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// normalizeInteger strips leading zeros, keeping a single "0" for an empty or
// all-zero integer part.
func normalizeInteger(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}

	return s
}
