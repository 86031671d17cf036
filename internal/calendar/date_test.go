package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-03-10 ")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.March, Day: 10}, d)
	assert.Equal(t, "2024-03-10", d.String())

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateOfIgnoresClock(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	late := time.Date(2024, time.March, 10, 23, 59, 0, 0, loc)
	early := time.Date(2024, time.March, 10, 0, 1, 0, 0, loc)
	assert.Equal(t, DateOf(early), DateOf(late))
}

func TestCompare(t *testing.T) {
	a := NewDate(2024, time.March, 5)
	b := NewDate(2024, time.March, 10)
	c := NewDate(2025, time.January, 1)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, 0, a.Compare(NewDate(2024, time.March, 5)))
	assert.True(t, a.Before(b))
	assert.True(t, c.After(a))
	assert.True(t, a.Equal(a))
}

func TestAddDaysAndMonths(t *testing.T) {
	assert.Equal(t, NewDate(2024, time.March, 1), NewDate(2024, time.February, 28).AddDays(2))
	assert.Equal(t, NewDate(2023, time.December, 31), NewDate(2024, time.January, 1).AddDays(-1))

	assert.Equal(t, NewDate(2024, time.February, 29), NewDate(2024, time.January, 31).AddMonths(1))
	assert.Equal(t, NewDate(2023, time.November, 30), NewDate(2024, time.January, 30).AddMonths(-2))
	assert.Equal(t, NewDate(2025, time.January, 15), NewDate(2024, time.December, 15).AddMonths(1))
}

func TestNewDateNormalizes(t *testing.T) {
	assert.Equal(t, Date{Year: 2024, Month: time.March, Day: 1}, NewDate(2024, time.February, 30))
	assert.True(t, Date{}.IsZero())
	assert.Equal(t, "", Date{}.String())
}

func TestConstraintsReasonOrder(t *testing.T) {
	minDate := NewDate(2024, time.March, 10)
	c := Constraints{
		Min:              &minDate,
		DisabledDates:    []Date{NewDate(2024, time.March, 3), NewDate(2024, time.March, 20)},
		DisabledWeekdays: []time.Weekday{time.Wednesday},
	}

	// March 3 is both before min and explicitly disabled; min wins.
	assert.Equal(t, BeforeMin, c.Reason(NewDate(2024, time.March, 3)))
	assert.Equal(t, DisabledDate, c.Reason(NewDate(2024, time.March, 20)))
	assert.Equal(t, DisabledWeekday, c.Reason(NewDate(2024, time.March, 13)))
	assert.Equal(t, Enabled, c.Reason(NewDate(2024, time.March, 14)))
	assert.Equal(t, "weekday disabled", DisabledWeekday.String())
}

func TestConstraintsClamp(t *testing.T) {
	minDate := NewDate(2024, time.March, 10)
	maxDate := NewDate(2024, time.March, 20)
	c := Constraints{Min: &minDate, Max: &maxDate}

	assert.Equal(t, minDate, c.Clamp(NewDate(2024, time.January, 1)))
	assert.Equal(t, maxDate, c.Clamp(NewDate(2024, time.April, 1)))
	mid := NewDate(2024, time.March, 15)
	assert.Equal(t, mid, c.Clamp(mid))
	assert.Equal(t, mid, Constraints{}.Clamp(mid))
}
