// Package types implements special types for the Buckwheat backend.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Day is a calendar date without a time of day.
//
// All day arithmetic is timezone-naive: a Day is stored as midnight UTC and
// two Days are compared by their calendar date only, never converted across
// timezone boundaries.
type Day time.Time

// NewDay returns a new Day.
func NewDay(year int, month time.Month, day int) Day {
	return Day(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DayOf returns the Day on which a time occurs in that time's location.
func DayOf(t time.Time) Day {
	year, month, day := t.Date()
	return NewDay(year, month, day)
}

// Today returns the current Day in the local timezone.
func Today() Day {
	return DayOf(time.Now())
}

// String returns the day formatted as YYYY-MM-DD.
func (d Day) String() string {
	year, month, day := time.Time(d).Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Day) MarshalJSON() ([]byte, error) {
	return time.Time(d).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The day is expected to be a string in RFC3339 or "2006-01-02" format.
// From the parsed string, everything except the calendar date is ignored.
func (d *Day) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`) // get rid of "
	if value == "" || value == "null" {
		return nil
	}

	// This allows to parse strings in the "2006-01-02" format
	match, err := regexp.MatchString("^[0-9]{4}-[0-9]{2}-[0-9]{2}$", value)
	if err != nil {
		return err
	}

	// This is the default pattern
	pattern := "2006-01-02T15:04:05Z07:00"
	if match {
		pattern = "2006-01-02"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*d = DayOf(t)
	return nil
}

// UnmarshalParam binds the day from URI and query parameters.
func (d *Day) UnmarshalParam(param string) error {
	if param == "" {
		*d = Day{}
		return nil
	}

	parsed, err := ParseDay(param)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// ParseDay parses a string in RFC3339 full-date format and returns the Day value it represents.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, err
	}

	return DayOf(t), nil
}

// Scan reads the value from the database.
func (d *Day) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*d = DayOf(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (d Day) Value() (driver.Value, error) {
	year, month, day := time.Time(d).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Day) GormDataType() string {
	return "date"
}

// IsZero reports if the day is the zero value.
func (d Day) IsZero() bool {
	return time.Time(d).IsZero()
}

// Time returns the day as midnight UTC.
func (d Day) Time() time.Time {
	year, month, day := time.Time(d).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AddDays adds a specified amount of days.
func (d Day) AddDays(days int) Day {
	return DayOf(d.Time().AddDate(0, 0, days))
}

// Before reports whether the day d falls before e.
func (d Day) Before(e Day) bool {
	return d.Time().Before(e.Time())
}

// After reports whether the day d falls after e.
func (d Day) After(e Day) bool {
	return d.Time().After(e.Time())
}

// Equal reports whether d and e represent the same calendar date.
func (d Day) Equal(e Day) bool {
	return d.Time().Equal(e.Time())
}

// IsSameDay reports whether both times fall on the same calendar date.
func IsSameDay(a, b Day) bool {
	return a.Equal(b)
}

// CountDays returns the inclusive day count between two calendar dates,
// ignoring time of day. It returns 0 when to falls before from.
func CountDays(from, to Day) int {
	if to.Before(from) {
		return 0
	}

	return int(to.Time().Sub(from.Time())/(24*time.Hour)) + 1
}
