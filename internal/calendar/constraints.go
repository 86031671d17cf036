package calendar

import "time"

// DisabledReason names the first rule that disabled a date.
type DisabledReason int

const (
	Enabled DisabledReason = iota
	BeforeMin
	AfterMax
	DisabledDate
	DisabledWeekday
)

func (r DisabledReason) String() string {
	switch r {
	case BeforeMin:
		return "before minimum date"
	case AfterMax:
		return "after maximum date"
	case DisabledDate:
		return "date disabled"
	case DisabledWeekday:
		return "weekday disabled"
	default:
		return "enabled"
	}
}

// Constraints bound which days may be selected. A nil Min or Max leaves that
// side open.
type Constraints struct {
	Min              *Date
	Max              *Date
	DisabledDates    []Date
	DisabledWeekdays []time.Weekday
}

// Reason evaluates min, max, disabled dates and disabled weekdays in that
// order and reports the first match.
func (c Constraints) Reason(d Date) DisabledReason {
	if c.Min != nil && d.Before(*c.Min) {
		return BeforeMin
	}
	if c.Max != nil && d.After(*c.Max) {
		return AfterMax
	}
	for _, dd := range c.DisabledDates {
		if dd == d {
			return DisabledDate
		}
	}
	wd := d.Weekday()
	for _, w := range c.DisabledWeekdays {
		if w == wd {
			return DisabledWeekday
		}
	}
	return Enabled
}

func (c Constraints) IsDisabled(d Date) bool {
	return c.Reason(d) != Enabled
}

// Clamp pulls d inside [Min, Max]. It ignores the date and weekday rules.
func (c Constraints) Clamp(d Date) Date {
	if c.Min != nil && d.Before(*c.Min) {
		return *c.Min
	}
	if c.Max != nil && d.After(*c.Max) {
		return *c.Max
	}
	return d
}

// periodOutside reports whether every day of [first, last] falls outside the
// Min/Max window.
func (c Constraints) periodOutside(first, last Date) bool {
	if c.Min != nil && last.Before(*c.Min) {
		return true
	}
	if c.Max != nil && first.After(*c.Max) {
		return true
	}
	return false
}
