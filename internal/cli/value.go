package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"datepick/internal/picker"
	"datepick/internal/selection"
)

// ValueOptions holds flags for the value command.
type ValueOptions struct {
	Clear bool
	Set   string
}

// NewValueCommand creates the value command.
func NewValueCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValueOptions{}

	cmd := &cobra.Command{
		Use:   "value",
		Short: "Print, replace or clear the stored selection",
		Long: `Print the stored selection in its text form, for example
"single:2024-03-01" or "range:2024-03-05..2024-03-10".

--set replaces it after checking the mode and the configured constraints.
--clear removes it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValue(rootOpts, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.Clear, "clear", false, "remove the stored selection")
	cmd.Flags().StringVar(&opts.Set, "set", "", "store an encoded selection")
	cmd.MarkFlagsMutuallyExclusive("clear", "set")

	return cmd
}

func runValue(rootOpts *RootOptions, opts *ValueOptions, w io.Writer) error {
	s, err := openSession(rootOpts)
	if err != nil {
		return err
	}
	defer s.Close()

	saver := picker.NewPersister(s.store)
	switch {
	case opts.Clear:
		saver.Save(selection.New(s.picker.Mode()))
		if err := saver.Err(); err != nil {
			return fmt.Errorf("clear value: %w", err)
		}
		_, err = fmt.Fprintln(w, "cleared")
		return err
	case opts.Set != "":
		v, err := selection.Decode(opts.Set, s.picker.Mode())
		if err != nil {
			return err
		}
		if v.Mode != s.picker.Mode() {
			return fmt.Errorf("value mode %s does not match configured mode %s", v.Mode, s.picker.Mode())
		}
		if err := v.Validate(s.picker.Constraints()); err != nil {
			return err
		}
		saver.Save(v)
		if err := saver.Err(); err != nil {
			return fmt.Errorf("store value: %w", err)
		}
		_, err = fmt.Fprintf(w, "stored %s\n", v.Encode())
		return err
	}

	v := s.picker.Value()
	if v.IsEmpty() {
		_, err = fmt.Fprintln(w, "(none)")
		return err
	}
	_, err = fmt.Fprintln(w, v.Encode())
	return err
}
