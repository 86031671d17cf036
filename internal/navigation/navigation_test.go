package navigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"datepick/internal/calendar"
)

func TestNew(t *testing.T) {
	s := New(calendar.NewDate(2024, time.March, 10))
	assert.Equal(t, State{View: Days, Month: time.March, Year: 2024, YearWindowStart: 2016}, s)
}

func TestDaysRollover(t *testing.T) {
	jan := State{View: Days, Month: time.January, Year: 2024}
	assert.Equal(t, State{View: Days, Month: time.December, Year: 2023}, Previous(jan))

	dec := State{View: Days, Month: time.December, Year: 2023}
	assert.Equal(t, State{View: Days, Month: time.January, Year: 2024}, Next(dec))

	mid := State{View: Days, Month: time.June, Year: 2024}
	assert.Equal(t, time.May, Previous(mid).Month)
	assert.Equal(t, time.July, Next(mid).Month)
	assert.Equal(t, mid, Previous(Next(mid)))
}

func TestMonthsAndYearsPaging(t *testing.T) {
	m := State{View: Months, Month: time.June, Year: 2024}
	assert.Equal(t, 2023, Previous(m).Year)
	assert.Equal(t, 2025, Next(m).Year)
	assert.Equal(t, time.June, Next(m).Month)

	y := State{View: Years, Month: time.June, Year: 2024, YearWindowStart: 2016}
	assert.Equal(t, 2004, Previous(y).YearWindowStart)
	assert.Equal(t, 2028, Next(y).YearWindowStart)
	assert.Equal(t, 2024, Next(y).Year)
}

func TestPreviousStopsAtYearOne(t *testing.T) {
	first := State{View: Days, Month: time.January, Year: 1}
	assert.Equal(t, first, Previous(first))

	months := State{View: Months, Month: time.May, Year: 1}
	assert.Equal(t, months, Previous(months))

	years := State{View: Years, Year: 5, YearWindowStart: 0}
	assert.Equal(t, years, Previous(years))
	assert.Equal(t, 0, Previous(State{View: Years, YearWindowStart: 12}).YearWindowStart)
}

func TestDrillDownAndUp(t *testing.T) {
	s := State{View: Days, Month: time.March, Year: 2031, YearWindowStart: 2016}

	s = DrillDown(s)
	assert.Equal(t, Months, s.View)
	s = DrillDown(s)
	assert.Equal(t, Years, s.View)
	assert.Equal(t, 2028, s.YearWindowStart, "window realigned to contain 2031")
	assert.Equal(t, s, DrillDown(s), "years is the outermost view")

	s = SelectYear(s, 2030)
	assert.Equal(t, Months, s.View)
	assert.Equal(t, 2030, s.Year)

	s = SelectMonth(s, time.October)
	assert.Equal(t, State{View: Days, Month: time.October, Year: 2030, YearWindowStart: 2028}, s)
}

func TestSelectInWrongViewIsNoop(t *testing.T) {
	days := State{View: Days, Month: time.March, Year: 2024}
	assert.Equal(t, days, SelectMonth(days, time.May))
	assert.Equal(t, days, SelectYear(days, 2020))

	months := State{View: Months, Month: time.March, Year: 2024}
	assert.Equal(t, months, SelectMonth(months, 13))
	assert.Equal(t, months, SelectYear(months, 2020))
}

func TestGoToAndTitle(t *testing.T) {
	s := State{View: Years, Month: time.March, Year: 2024, YearWindowStart: 2016}
	s = GoTo(s, calendar.NewDate(1999, time.July, 4))
	assert.Equal(t, State{View: Days, Month: time.July, Year: 1999, YearWindowStart: 1992}, s)
	assert.Equal(t, s, GoTo(s, calendar.Date{}))

	assert.Equal(t, "July 1999", Title(s))
	assert.Equal(t, "1999", Title(DrillDown(s)))
	assert.Equal(t, "1992-2003", Title(DrillDown(DrillDown(s))))
}
