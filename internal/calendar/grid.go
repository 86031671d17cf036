package calendar

import "time"

const (
	GridWeeks = 6
	GridCells = GridWeeks * 7
)

// DayCell is one day of the month grid with its derived display flags.
type DayCell struct {
	Date         Date
	CurrentMonth bool
	IsToday      bool
	IsSelected   bool
	InRange      bool
	RangeStart   bool
	RangeEnd     bool
	Disabled     bool
	IsWeekend    bool
}

// Marker is the read view of a selection the grid needs.
type Marker interface {
	IsSelected(d Date) bool
	IsDateInRange(d Date) bool
	IsRangeStart(d Date) bool
	IsRangeEnd(d Date) bool
}

// BuildMonthGrid lays out six Sunday-first weeks around the given month. The
// grid always has 42 cells so the rendered height never changes. marker may be
// nil.
func BuildMonthGrid(year int, month time.Month, today Date, marker Marker, c Constraints) [GridCells]DayCell {
	first := NewDate(year, month, 1)
	start := first.AddDays(-int(first.Weekday()))

	var cells [GridCells]DayCell
	for i := range cells {
		d := start.AddDays(i)
		cell := DayCell{
			Date:         d,
			CurrentMonth: d.Year == first.Year && d.Month == first.Month,
			IsToday:      d == today,
			Disabled:     c.IsDisabled(d),
			IsWeekend:    d.IsWeekend(),
		}
		if marker != nil {
			cell.IsSelected = marker.IsSelected(d)
			cell.InRange = marker.IsDateInRange(d)
			cell.RangeStart = marker.IsRangeStart(d)
			cell.RangeEnd = marker.IsRangeEnd(d) && !cell.RangeStart
		}
		cells[i] = cell
	}
	return cells
}

// PeriodCell is one entry of the months or years view.
type PeriodCell struct {
	Year     int
	Month    time.Month // zero in the years view
	Current  bool
	Disabled bool
}

// MonthCells lists January..December of year. A month is disabled when all
// of its days are outside Min/Max.
func MonthCells(year int, today Date, c Constraints) [12]PeriodCell {
	var cells [12]PeriodCell
	for i := range cells {
		m := time.January + time.Month(i)
		first := NewDate(year, m, 1)
		cells[i] = PeriodCell{
			Year:     year,
			Month:    m,
			Current:  today.Year == year && today.Month == m,
			Disabled: c.periodOutside(first, first.LastOfMonth()),
		}
	}
	return cells
}

// YearCells lists the twelve years starting at windowStart.
func YearCells(windowStart int, today Date, c Constraints) [12]PeriodCell {
	var cells [12]PeriodCell
	for i := range cells {
		y := windowStart + i
		cells[i] = PeriodCell{
			Year:     y,
			Current:  today.Year == y,
			Disabled: y < 1 || c.periodOutside(NewDate(y, time.January, 1), NewDate(y, time.December, 31)),
		}
	}
	return cells
}
