package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"datepick/internal/calendar"
	"datepick/internal/picker"
)

// NewGridCommand creates the grid command.
func NewGridCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid [YYYY-MM]",
		Short: "Print a month with the stored selection marked",
		Long: `Print the six-week grid for a month. Defaults to the month of the
stored selection, or the current month when nothing is stored.

  [d]  selected    -d-  inside a range    d*  today    dx  disabled`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(rootOpts, args, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runGrid(opts *RootOptions, args []string, w io.Writer) error {
	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) == 1 {
		t, err := time.Parse("2006-01", args[0])
		if err != nil {
			return fmt.Errorf("invalid month %q: want YYYY-MM", args[0])
		}
		s.picker.GoTo(calendar.DateOf(t))
	}
	_, err = io.WriteString(w, renderGrid(s.picker))
	return err
}

func renderGrid(p *picker.Picker) string {
	var b strings.Builder
	b.WriteString(p.Title())
	b.WriteString("\n")
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")

	grid := p.Grid()
	for w := 0; w < calendar.GridWeeks; w++ {
		cells := make([]string, 0, 7)
		for _, c := range grid[w*7 : w*7+7] {
			cells = append(cells, gridCell(c))
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, ""), " "))
		b.WriteString("\n")
	}

	v := p.Value()
	if v.IsEmpty() {
		fmt.Fprintf(&b, "value (%s): (none)\n", v.Mode)
	} else {
		fmt.Fprintf(&b, "value (%s): %s\n", v.Mode, v.Encode())
	}
	return b.String()
}

// gridCell renders one cell four columns wide. Days outside the month are
// blank unless marked.
func gridCell(c calendar.DayCell) string {
	day := fmt.Sprintf("%2d", c.Date.Day)
	switch {
	case c.IsSelected:
		return "[" + day + "]"
	case c.InRange:
		return "-" + day + "-"
	case !c.CurrentMonth:
		return "    "
	case c.Disabled:
		return " " + day + "x"
	case c.IsToday:
		return " " + day + "*"
	}
	return " " + day + " "
}
