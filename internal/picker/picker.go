// Package picker binds the grid builder, the selection engine and the
// navigation state into the object a host UI talks to. A Picker belongs to a
// single host and is not safe for concurrent use.
package picker

import (
	"log/slog"
	"time"

	"datepick/internal/calendar"
	"datepick/internal/navigation"
	"datepick/internal/selection"
)

type Options struct {
	Mode        selection.Mode
	Constraints calendar.Constraints
	// Now defaults to time.Now.
	Now func() time.Time
}

type Picker struct {
	mode      selection.Mode
	c         calendar.Constraints
	now       func() time.Time
	value     selection.Selection
	nav       navigation.State
	hover     *calendar.Date
	listeners []func(selection.Selection)
}

func New(opts Options) *Picker {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	p := &Picker{
		mode:  opts.Mode,
		c:     opts.Constraints,
		now:   now,
		value: selection.New(opts.Mode),
	}
	p.nav = navigation.New(p.Today())
	return p
}

func (p *Picker) Today() calendar.Date {
	return calendar.DateOf(p.now())
}

func (p *Picker) Mode() selection.Mode              { return p.mode }
func (p *Picker) Constraints() calendar.Constraints { return p.c }
func (p *Picker) Value() selection.Selection        { return p.value }
func (p *Picker) Nav() navigation.State             { return p.nav }

// OnChange registers fn to receive every completed value.
func (p *Picker) OnChange(fn func(selection.Selection)) {
	p.listeners = append(p.listeners, fn)
}

// WriteValue replaces the value without notifying listeners. A value in a
// different mode is dropped. The view moves to the value's first day.
func (p *Picker) WriteValue(v selection.Selection) {
	if v.Mode != p.mode {
		slog.Warn("ignoring value for other mode", "mode", p.mode, "value_mode", v.Mode)
		return
	}
	p.value = v
	p.hover = nil
	if vals := v.Values(); len(vals) > 0 {
		p.nav = navigation.GoTo(p.nav, vals[0])
	}
}

// Click applies a click on d. It reports whether the value changed.
func (p *Picker) Click(d calendar.Date) bool {
	if r := p.c.Reason(d); r != calendar.Enabled {
		slog.Debug("click rejected", "date", d, "reason", r)
		return false
	}
	next := selection.Select(p.value, d, p.c)
	if next.Equal(p.value) {
		return false
	}
	p.value = next
	if !next.AwaitingEnd() {
		p.hover = nil
	}
	slog.Debug("selection changed", "value", next.Encode())
	if next.Complete() {
		p.emit()
	}
	return true
}

func (p *Picker) emit() {
	for _, fn := range p.listeners {
		fn(p.value)
	}
}

// Hover records the day under the pointer. It only affects the grid while a
// range waits for its end.
func (p *Picker) Hover(d calendar.Date) {
	p.hover = &d
}

func (p *Picker) ClearHover() {
	p.hover = nil
}

// Grid builds the visible month with selection and preview flags.
func (p *Picker) Grid() [calendar.GridCells]calendar.DayCell {
	return calendar.BuildMonthGrid(p.nav.Year, p.nav.Month, p.Today(), p.value.WithPreview(p.hover), p.c)
}

func (p *Picker) MonthCells() [12]calendar.PeriodCell {
	return calendar.MonthCells(p.nav.Year, p.Today(), p.c)
}

func (p *Picker) YearCells() [12]calendar.PeriodCell {
	return calendar.YearCells(p.nav.YearWindowStart, p.Today(), p.c)
}

// SetMode switches the selection mode and drops the current value.
func (p *Picker) SetMode(m selection.Mode) {
	p.mode = m
	p.value = selection.New(m)
	p.hover = nil
}

// Clear empties the value and notifies listeners.
func (p *Picker) Clear() {
	if p.value.IsEmpty() {
		return
	}
	p.value = p.value.Clear()
	p.hover = nil
	p.emit()
}

func (p *Picker) Previous()            { p.nav = navigation.Previous(p.nav) }
func (p *Picker) Next()                { p.nav = navigation.Next(p.nav) }
func (p *Picker) DrillDown()           { p.nav = navigation.DrillDown(p.nav) }
func (p *Picker) ShowToday()           { p.nav = navigation.GoTo(p.nav, p.Today()) }
func (p *Picker) GoTo(d calendar.Date) { p.nav = navigation.GoTo(p.nav, d) }

func (p *Picker) SelectMonth(m time.Month) {
	p.nav = navigation.SelectMonth(p.nav, m)
}

func (p *Picker) SelectYear(y int) {
	p.nav = navigation.SelectYear(p.nav, y)
}

func (p *Picker) Title() string {
	return navigation.Title(p.nav)
}
