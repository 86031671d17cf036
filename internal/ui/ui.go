package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"datepick/internal/calendar"
	"datepick/internal/config"
	"datepick/internal/navigation"
	"datepick/internal/picker"
	"datepick/internal/storage"
)

type mode int

const (
	modeBrowse mode = iota
	modeGoTo
)

const periodCols = 3

type Model struct {
	picker   *picker.Picker
	saver    *picker.Persister
	cfg      config.Config
	cursor   calendar.Date
	period   int
	mode     mode
	input    textinput.Model
	status   string
	styles   styles
	quitting bool
}

func NewModel(p *picker.Picker, store storage.KV, cfg config.Config) Model {
	saver := picker.NewPersister(store)
	p.OnChange(saver.Save)

	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Width = 20

	cursor := p.Today()
	if vals := p.Value().Values(); len(vals) > 0 {
		cursor = vals[0]
	}
	p.GoTo(cursor)

	return Model{
		picker: p,
		saver:  saver,
		cfg:    cfg,
		cursor: cursor,
		input:  ti,
		mode:   modeBrowse,
		status: fmt.Sprintf("Mode %s. Press '%s' to pick a day.", p.Mode(), keyLabel(cfg.Keys.Select)),
		styles: defaultStyles(),
	}
}

func Run(p *picker.Picker, store storage.KV, cfg config.Config) error {
	program := tea.NewProgram(NewModel(p, store, cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == modeGoTo {
			return m.updateGoToMode(msg.String(), msg)
		}
		return m.handleKey(msg.String())
	case tea.WindowSizeMsg:
		m.input.Width = min(msg.Width-10, 20)
	}
	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	k := m.cfg.Keys
	switch key {
	case "ctrl+c", k.Quit:
		m.quitting = true
		return m, tea.Quit
	case k.GoTo:
		m.mode = modeGoTo
		m.input.SetValue("")
		m.input.Focus()
		m.status = "Go to date: type YYYY-MM-DD and press Enter"
		return m, textinput.Blink
	case k.Today:
		m.picker.ShowToday()
		m.moveCursor(m.picker.Today())
		m.status = "Today is " + m.picker.Today().String()
		return m, nil
	case k.Clear:
		m.picker.Clear()
		m.status = "Cleared"
		m.reportSave()
		return m, nil
	}

	switch m.picker.Nav().View {
	case navigation.Months, navigation.Years:
		return m.updatePeriodView(key)
	default:
		return m.updateDaysView(key)
	}
}

func (m Model) updateDaysView(key string) (tea.Model, tea.Cmd) {
	k := m.cfg.Keys
	switch key {
	case k.Left, "left":
		m.stepCursor(m.cursor.AddDays(-1))
	case k.Right, "right":
		m.stepCursor(m.cursor.AddDays(1))
	case k.Up, "up":
		m.stepCursor(m.cursor.AddDays(-7))
	case k.Down, "down":
		m.stepCursor(m.cursor.AddDays(7))
	case k.Prev, "pgup":
		m.stepCursor(m.cursor.AddMonths(-1))
	case k.Next, "pgdown":
		m.stepCursor(m.cursor.AddMonths(1))
	case k.ZoomOut:
		m.picker.DrillDown()
		m.period = int(m.picker.Nav().Month) - 1
		m.status = "Pick a month"
	case k.Select, k.Confirm, "enter":
		m.click()
	}
	return m, nil
}

func (m Model) updatePeriodView(key string) (tea.Model, tea.Cmd) {
	k := m.cfg.Keys
	view := m.picker.Nav().View
	switch key {
	case k.Left, "left":
		m.period = clampCursor(m.period-1, 12)
	case k.Right, "right":
		m.period = clampCursor(m.period+1, 12)
	case k.Up, "up":
		m.period = clampCursor(m.period-periodCols, 12)
	case k.Down, "down":
		m.period = clampCursor(m.period+periodCols, 12)
	case k.Prev, "pgup":
		m.picker.Previous()
	case k.Next, "pgdown":
		m.picker.Next()
	case k.ZoomOut:
		if view == navigation.Months {
			m.picker.DrillDown()
			nav := m.picker.Nav()
			m.period = nav.Year - nav.YearWindowStart
			m.status = "Pick a year"
		}
	case k.Cancel, "esc":
		nav := m.picker.Nav()
		if view == navigation.Years {
			m.picker.SelectYear(nav.Year)
			m.period = int(nav.Month) - 1
			m.status = "Pick a month"
		} else {
			m.picker.SelectMonth(nav.Month)
			m.placeCursor(nav.Year, nav.Month)
			m.status = ""
		}
	case k.Select, k.Confirm, "enter":
		m.choosePeriod()
	}
	return m, nil
}

func (m *Model) choosePeriod() {
	nav := m.picker.Nav()
	if nav.View == navigation.Years {
		cell := m.picker.YearCells()[m.period]
		if cell.Disabled {
			m.status = fmt.Sprintf("%d is out of range", cell.Year)
			return
		}
		m.picker.SelectYear(cell.Year)
		m.period = int(nav.Month) - 1
		m.status = "Pick a month"
		return
	}
	cell := m.picker.MonthCells()[m.period]
	if cell.Disabled {
		m.status = fmt.Sprintf("%s %d is out of range", cell.Month, cell.Year)
		return
	}
	m.picker.SelectMonth(cell.Month)
	m.placeCursor(cell.Year, cell.Month)
	m.status = ""
}

func (m *Model) placeCursor(year int, month time.Month) {
	last := calendar.DaysInMonth(year, month)
	m.cursor = calendar.NewDate(year, month, min(m.cursor.Day, last))
	m.picker.Hover(m.cursor)
}

func (m *Model) click() {
	d := m.cursor
	c := m.picker.Constraints()
	if r := c.Reason(d); r != calendar.Enabled {
		m.status = fmt.Sprintf("%s is not selectable: %s", d, r)
		return
	}
	if !m.picker.Click(d) {
		m.status = "No change"
		return
	}
	v := m.picker.Value()
	switch {
	case v.AwaitingEnd():
		m.picker.Hover(d)
		m.status = fmt.Sprintf("Range starts %s, pick the end", d)
	case v.IsEmpty():
		m.status = "Nothing selected"
	default:
		m.status = "Selected " + v.Encode()
	}
	m.reportSave()
}

func (m *Model) stepCursor(d calendar.Date) {
	if d.Year < 1 {
		return
	}
	m.moveCursor(d)
}

func (m *Model) moveCursor(d calendar.Date) {
	m.cursor = d
	nav := m.picker.Nav()
	if d.Year != nav.Year || d.Month != nav.Month {
		m.picker.GoTo(d)
	}
	m.picker.Hover(d)
}

func (m *Model) reportSave() {
	if err := m.saver.Err(); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
	}
}

func (m Model) updateGoToMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		m.mode = modeBrowse
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		raw := strings.TrimSpace(m.input.Value())
		d, err := calendar.ParseDate(raw)
		if err != nil {
			m.status = fmt.Sprintf("date invalid: %v", err)
			return m, nil
		}
		d = m.picker.Constraints().Clamp(d)
		m.picker.GoTo(d)
		m.moveCursor(d)
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeBrowse
		m.status = "Jumped to " + d.String()
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
