package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/buckwheat-app/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestDayUnmarshalJSON(t *testing.T) {
	var target struct {
		Day types.Day
	}
	jsonString := []byte(`{ "day": "2024-05-12T17:59:23+02:00" }`)

	err := json.Unmarshal(jsonString, &target)

	assert.Nil(t, err)
	assert.Equal(t, types.NewDay(2024, 5, 12), target.Day)
}

func TestDayUnmarshalJSONDateOnly(t *testing.T) {
	var target struct {
		Day types.Day
	}
	jsonString := []byte(`{ "day": "2022-10-02" }`)

	err := json.Unmarshal(jsonString, &target)

	assert.Nil(t, err)
	assert.Equal(t, types.NewDay(2022, 10, 2), target.Day)
}

func TestDayString(t *testing.T) {
	assert.Equal(t, "2022-03-07", types.NewDay(2022, 3, 7).String())
}

func TestDayOf(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	assert.Nil(t, err)

	// Late evening local time stays on the same calendar date
	d := types.DayOf(time.Date(2022, 12, 31, 23, 30, 0, 0, loc))
	assert.Equal(t, types.NewDay(2022, 12, 31), d)
}

func TestDayAddDays(t *testing.T) {
	tests := []struct {
		day  types.Day
		add  int
		want types.Day
	}{
		{types.NewDay(2022, 3, 7), 1, types.NewDay(2022, 3, 8)},
		{types.NewDay(2022, 12, 31), 1, types.NewDay(2023, 1, 1)},
		{types.NewDay(2022, 3, 1), -1, types.NewDay(2022, 2, 28)},
		{types.NewDay(2020, 2, 28), 1, types.NewDay(2020, 2, 29)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.day.AddDays(tt.add))
	}
}

func TestCountDays(t *testing.T) {
	tests := []struct {
		name string
		from types.Day
		to   types.Day
		want int
	}{
		{"same day", types.NewDay(2022, 3, 7), types.NewDay(2022, 3, 7), 1},
		{"three days", types.NewDay(2022, 3, 7), types.NewDay(2022, 3, 9), 3},
		{"across month", types.NewDay(2022, 2, 27), types.NewDay(2022, 3, 2), 4},
		{"across year", types.NewDay(2022, 12, 30), types.NewDay(2023, 1, 2), 4},
		{"to before from", types.NewDay(2022, 3, 9), types.NewDay(2022, 3, 7), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, types.CountDays(tt.from, tt.to))
		})
	}
}

func TestCountDaysAcrossDSTChange(t *testing.T) {
	// The last Sunday of March is 23 hours long in CET, day counting must
	// not be affected since Days are calendar dates, not instants.
	assert.Equal(t, 3, types.CountDays(types.NewDay(2022, 3, 26), types.NewDay(2022, 3, 28)))
}

func TestDayComparisons(t *testing.T) {
	a := types.NewDay(2022, 3, 7)
	b := types.NewDay(2022, 3, 8)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.True(t, types.IsSameDay(a, types.NewDay(2022, 3, 7)))
}

func TestDayUnmarshalParam(t *testing.T) {
	var d types.Day
	assert.Nil(t, d.UnmarshalParam("2022-03-07"))
	assert.Equal(t, types.NewDay(2022, 3, 7), d)

	assert.Nil(t, d.UnmarshalParam(""))
	assert.Equal(t, types.Day{}, d)

	assert.NotNil(t, d.UnmarshalParam("not a date"))
}

func TestParseDay(t *testing.T) {
	d, err := types.ParseDay("2022-03-07")
	assert.Nil(t, err)
	assert.Equal(t, types.NewDay(2022, 3, 7), d)

	_, err = types.ParseDay("not a date")
	assert.NotNil(t, err)
}
