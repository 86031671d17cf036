package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"datepick/internal/calendar"
	"datepick/internal/config"
	"datepick/internal/navigation"
)

var weekdayHeader = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	cell     lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	inRange  lipgloss.Style
	today    lipgloss.Style
	outside  lipgloss.Style
	disabled lipgloss.Style
	weekend  lipgloss.Style
	status   lipgloss.Style
	help     lipgloss.Style
}

func defaultStyles() styles {
	cell := lipgloss.NewStyle().Width(4).Align(lipgloss.Center)
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   cell.Foreground(lipgloss.Color("245")),
		cell:     cell,
		cursor:   cell.Reverse(true),
		selected: cell.Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
		inRange:  cell.Background(lipgloss.Color("237")),
		today:    cell.Underline(true).Foreground(lipgloss.Color("212")),
		outside:  cell.Faint(true),
		disabled: cell.Strikethrough(true).Foreground(lipgloss.Color("240")),
		weekend:  cell.Foreground(lipgloss.Color("174")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("110")),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	b.WriteString(m.styles.title.Render(fmt.Sprintf("< %s >", m.picker.Title())))
	b.WriteString("\n\n")

	switch m.picker.Nav().View {
	case navigation.Months:
		b.WriteString(m.renderMonths())
	case navigation.Years:
		b.WriteString(m.renderYears())
	default:
		b.WriteString(m.renderDays())
	}

	b.WriteString("\n---\n")
	b.WriteString(m.renderValue())
	b.WriteString("\n")

	if m.mode == modeGoTo {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(renderHelp(m.cfg.Keys)))

	return b.String()
}

func (m Model) renderDays() string {
	var b strings.Builder
	for _, h := range weekdayHeader {
		b.WriteString(m.styles.header.Render(h))
	}
	b.WriteString("\n")

	grid := m.picker.Grid()
	for w := 0; w < calendar.GridWeeks; w++ {
		row := make([]string, 0, 7)
		for _, c := range grid[w*7 : w*7+7] {
			row = append(row, m.dayStyle(c).Render(fmt.Sprintf("%d", c.Date.Day)))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) dayStyle(c calendar.DayCell) lipgloss.Style {
	switch {
	case c.Date == m.cursor:
		return m.styles.cursor
	case c.IsSelected:
		return m.styles.selected
	case c.Disabled:
		return m.styles.disabled
	case c.InRange:
		return m.styles.inRange
	case !c.CurrentMonth:
		return m.styles.outside
	case c.IsToday:
		return m.styles.today
	case c.IsWeekend:
		return m.styles.weekend
	}
	return m.styles.cell
}

func (m Model) renderMonths() string {
	cells := m.picker.MonthCells()
	labels := make([]string, len(cells))
	for i, c := range cells {
		labels[i] = m.periodStyle(i, c).Render(c.Month.String()[:3])
	}
	return renderTable(labels)
}

func (m Model) renderYears() string {
	cells := m.picker.YearCells()
	labels := make([]string, len(cells))
	for i, c := range cells {
		labels[i] = m.periodStyle(i, c).Render(fmt.Sprintf("%d", c.Year))
	}
	return renderTable(labels)
}

func (m Model) periodStyle(i int, c calendar.PeriodCell) lipgloss.Style {
	base := m.styles.cell.Width(8)
	switch {
	case i == m.period:
		return base.Reverse(true)
	case c.Disabled:
		return base.Strikethrough(true).Foreground(lipgloss.Color("240"))
	case c.Current:
		return base.Underline(true).Foreground(lipgloss.Color("212"))
	}
	return base
}

func renderTable(labels []string) string {
	var b strings.Builder
	for i := 0; i < len(labels); i += periodCols {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labels[i:i+periodCols]...))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderValue() string {
	v := m.picker.Value()
	if v.IsEmpty() {
		return fmt.Sprintf("Value (%s): (none)", v.Mode)
	}
	enc := v.Encode()
	if v.AwaitingEnd() {
		enc += " (awaiting end)"
	}
	return fmt.Sprintf("Value (%s): %s", v.Mode, enc)
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s/%s/%s move • %s pick • %s/%s page • %s zoom out • %s today • %s go to • %s clear • %s quit",
		k.Left, k.Down, k.Up, k.Right, keyLabel(k.Select), k.Prev, k.Next, k.ZoomOut, k.Today, k.GoTo, k.Clear, k.Quit)
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
