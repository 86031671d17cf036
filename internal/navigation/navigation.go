// Package navigation tracks which page of the calendar is visible. Every
// transition is a total function: inputs that make no sense for the current
// view return the state unchanged.
package navigation

import (
	"fmt"
	"time"

	"datepick/internal/calendar"
)

type ViewMode int

const (
	Days ViewMode = iota
	Months
	Years
)

// WindowSize is the number of years shown at once in the years view.
const WindowSize = 12

func (v ViewMode) String() string {
	switch v {
	case Days:
		return "days"
	case Months:
		return "months"
	case Years:
		return "years"
	}
	return fmt.Sprintf("view(%d)", int(v))
}

type State struct {
	View            ViewMode
	Month           time.Month
	Year            int
	YearWindowStart int
}

func New(today calendar.Date) State {
	return State{
		View:            Days,
		Month:           today.Month,
		Year:            today.Year,
		YearWindowStart: windowFor(today.Year),
	}
}

func windowFor(year int) int {
	return year - year%WindowSize
}

func Previous(s State) State {
	switch s.View {
	case Days:
		if s.Year <= 1 && s.Month == time.January {
			return s
		}
		s.Month--
		if s.Month < time.January {
			s.Month = time.December
			s.Year--
		}
	case Months:
		if s.Year <= 1 {
			return s
		}
		s.Year--
	case Years:
		// the previous window would end before year 1
		if s.YearWindowStart <= 1 {
			return s
		}
		s.YearWindowStart -= WindowSize
	}
	return s
}

func Next(s State) State {
	switch s.View {
	case Days:
		s.Month++
		if s.Month > time.December {
			s.Month = time.January
			s.Year++
		}
	case Months:
		s.Year++
	case Years:
		s.YearWindowStart += WindowSize
	}
	return s
}

// DrillDown zooms out one level: days to months to years.
func DrillDown(s State) State {
	switch s.View {
	case Days:
		s.View = Months
	case Months:
		s.View = Years
		s.YearWindowStart = windowFor(s.Year)
	}
	return s
}

// SelectMonth picks a month in the months view and returns to days.
func SelectMonth(s State, m time.Month) State {
	if s.View != Months || m < time.January || m > time.December {
		return s
	}
	s.Month = m
	s.View = Days
	return s
}

// SelectYear picks a year in the years view and returns to months.
func SelectYear(s State, year int) State {
	if s.View != Years || year < 1 {
		return s
	}
	s.Year = year
	s.View = Months
	return s
}

// GoTo shows d's month in the days view.
func GoTo(s State, d calendar.Date) State {
	if d.IsZero() || d.Year < 1 {
		return s
	}
	return State{View: Days, Month: d.Month, Year: d.Year, YearWindowStart: windowFor(d.Year)}
}

// Title is the header label for the current page.
func Title(s State) string {
	switch s.View {
	case Months:
		return fmt.Sprintf("%d", s.Year)
	case Years:
		return fmt.Sprintf("%d-%d", s.YearWindowStart, s.YearWindowStart+WindowSize-1)
	default:
		return fmt.Sprintf("%s %d", s.Month, s.Year)
	}
}
