// Package selection implements the click protocol for each selection mode.
//
// A Selection is a value. Select never mutates its argument and never shares
// the Dates backing array with the value it returns, so a selection handed to
// a renderer stays stable while the picker moves on.
package selection

import (
	"fmt"
	"strings"

	"datepick/internal/calendar"
)

type Mode int

const (
	Single Mode = iota
	Range
	Multiple
	Week
	Month
)

var modeNames = []string{"single", "range", "multiple", "week", "month"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

func ParseMode(v string) (Mode, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for i, name := range modeNames {
		if v == name {
			return Mode(i), nil
		}
	}
	return Single, fmt.Errorf("unknown selection mode %q (want one of %s)", v, strings.Join(modeNames, ", "))
}

// Selection holds the value for one mode. Single uses Day; Range, Week and
// Month use Start/End; Multiple uses Dates in insertion order.
type Selection struct {
	Mode  Mode
	Day   *calendar.Date
	Start *calendar.Date
	End   *calendar.Date
	Dates []calendar.Date
}

func New(mode Mode) Selection {
	return Selection{Mode: mode}
}

// Select applies a click on d. Disabled days leave the selection unchanged.
func Select(s Selection, d calendar.Date, c calendar.Constraints) Selection {
	if d.IsZero() || c.IsDisabled(d) {
		return s
	}
	switch s.Mode {
	case Single:
		return Selection{Mode: Single, Day: ptr(d)}
	case Range:
		return selectRange(s, d)
	case Multiple:
		return toggle(s, d)
	case Week:
		start := d.AddDays(-int(d.Weekday()))
		return Selection{Mode: Week, Start: ptr(start), End: ptr(start.AddDays(6))}
	case Month:
		return Selection{Mode: Month, Start: ptr(d.FirstOfMonth()), End: ptr(d.LastOfMonth())}
	}
	return s
}

func selectRange(s Selection, d calendar.Date) Selection {
	if s.Start == nil || s.End != nil {
		return Selection{Mode: Range, Start: ptr(d)}
	}
	start := *s.Start
	switch {
	case d == start:
		return s
	case d.Before(start):
		return Selection{Mode: Range, Start: ptr(d), End: ptr(start)}
	default:
		return Selection{Mode: Range, Start: ptr(start), End: ptr(d)}
	}
}

func toggle(s Selection, d calendar.Date) Selection {
	out := make([]calendar.Date, 0, len(s.Dates)+1)
	found := false
	for _, x := range s.Dates {
		if x == d {
			found = true
			continue
		}
		out = append(out, x)
	}
	if !found {
		out = append(out, d)
	}
	if len(out) == 0 {
		out = nil
	}
	return Selection{Mode: Multiple, Dates: out}
}

// AwaitingEnd reports range phase B: a start without an end.
func (s Selection) AwaitingEnd() bool {
	return s.Mode == Range && s.Start != nil && s.End == nil
}

// Complete reports whether the host should be told about this value. Ranges
// only complete once both ends are set.
func (s Selection) Complete() bool {
	switch s.Mode {
	case Range:
		return s.Start != nil && s.End != nil
	case Week, Month:
		return s.Start != nil
	default:
		return true
	}
}

func (s Selection) IsEmpty() bool {
	return s.Day == nil && s.Start == nil && s.End == nil && len(s.Dates) == 0
}

// Clear keeps the mode and drops the value.
func (s Selection) Clear() Selection {
	return Selection{Mode: s.Mode}
}

func (s Selection) IsSelected(d calendar.Date) bool {
	switch s.Mode {
	case Single:
		return s.Day != nil && *s.Day == d
	case Range, Week, Month:
		return s.IsRangeStart(d) || s.IsRangeEnd(d)
	case Multiple:
		return s.contains(d)
	}
	return false
}

// IsDateInRange is true strictly between start and end.
func (s Selection) IsDateInRange(d calendar.Date) bool {
	if s.Start == nil || s.End == nil {
		return false
	}
	return d.After(*s.Start) && d.Before(*s.End)
}

func (s Selection) IsRangeStart(d calendar.Date) bool {
	return s.Start != nil && *s.Start == d
}

func (s Selection) IsRangeEnd(d calendar.Date) bool {
	return s.End != nil && *s.End == d
}

func (s Selection) contains(d calendar.Date) bool {
	for _, x := range s.Dates {
		if x == d {
			return true
		}
	}
	return false
}

// Equal compares by value, including Dates order.
func (s Selection) Equal(o Selection) bool {
	if s.Mode != o.Mode || !eqPtr(s.Day, o.Day) || !eqPtr(s.Start, o.Start) || !eqPtr(s.End, o.End) {
		return false
	}
	if len(s.Dates) != len(o.Dates) {
		return false
	}
	for i := range s.Dates {
		if s.Dates[i] != o.Dates[i] {
			return false
		}
	}
	return true
}

// Values flattens the selection for display: the single day, both range
// ends, or every toggled day.
func (s Selection) Values() []calendar.Date {
	switch {
	case s.Day != nil:
		return []calendar.Date{*s.Day}
	case s.Start != nil && s.End != nil:
		return []calendar.Date{*s.Start, *s.End}
	case s.Start != nil:
		return []calendar.Date{*s.Start}
	}
	return append([]calendar.Date(nil), s.Dates...)
}

func ptr(d calendar.Date) *calendar.Date {
	return &d
}

func eqPtr(a, b *calendar.Date) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
