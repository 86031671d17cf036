package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"datepick/internal/calendar"
	"datepick/internal/picker"
)

// NewSelectCommand creates the select command.
func NewSelectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select DATE...",
		Short: "Click dates in order and store the result",
		Long: `Apply each date as a click on the calendar, starting from the stored
selection, in the configured mode. Disabled dates are skipped.

In range mode the first click starts a range and the second ends it; a
range left without an end is not stored.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(rootOpts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	return cmd
}

func runSelect(opts *RootOptions, args []string, w, errW io.Writer) error {
	dates := make([]calendar.Date, 0, len(args))
	for _, a := range args {
		d, err := calendar.ParseDate(a)
		if err != nil {
			return err
		}
		dates = append(dates, d)
	}

	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	saver := picker.NewPersister(s.store)
	s.picker.OnChange(saver.Save)

	c := s.picker.Constraints()
	for _, d := range dates {
		if r := c.Reason(d); r != calendar.Enabled {
			fmt.Fprintf(errW, "skipped %s: %s\n", d, r)
			continue
		}
		s.picker.Click(d)
		if err := saver.Err(); err != nil {
			return fmt.Errorf("store value: %w", err)
		}
	}

	v := s.picker.Value()
	if v.AwaitingEnd() {
		_, err = fmt.Fprintf(w, "%s (awaiting end, not stored)\n", v.Encode())
		return err
	}
	if v.IsEmpty() {
		_, err = fmt.Fprintln(w, "(none)")
		return err
	}
	_, err = fmt.Fprintln(w, v.Encode())
	return err
}
