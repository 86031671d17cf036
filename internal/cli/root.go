package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"datepick/internal/config"
	"datepick/internal/logging"
	"datepick/internal/picker"
	"datepick/internal/storage"
	"datepick/internal/ui"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Ephemeral  bool

	now func() time.Time
}

// NewRootCommand creates the datepick command. Without a subcommand it runs
// the terminal picker.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "datepick",
		Short: "Calendar date picker for the terminal",
		Long: `Pick a single date, a range, a set of dates, a week or a month
from a calendar grid. The selection is stored next to the config file and
restored on the next run.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $DATEPICK_CONFIG or ~/.config/datepick/config.toml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log at debug level")
	cmd.PersistentFlags().BoolVar(&opts.Ephemeral, "ephemeral", false, "keep the selection in memory only")

	cmd.AddCommand(NewGridCommand(opts))
	cmd.AddCommand(NewValueCommand(opts))
	cmd.AddCommand(NewSelectCommand(opts))

	return cmd
}

func runPicker(opts *RootOptions) error {
	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()
	return ui.Run(s.picker, s.store, s.cfg)
}

// session is the state every command starts from: config, logging, store and
// a picker holding the stored value.
type session struct {
	cfg     config.Config
	picker  *picker.Picker
	store   storage.KV
	closers []io.Closer
}

func openSession(opts *RootOptions) (*session, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.ResolveConfigPath()
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	logCloser, err := logging.Setup(cfg.LogFile, level)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	s := &session{cfg: cfg, closers: []io.Closer{logCloser}}

	mode, err := cfg.SelectionMode()
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("config mode: %w", err)
	}
	c, err := cfg.Constraints()
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("config constraints: %w", err)
	}

	if opts.Ephemeral {
		s.store = storage.NewMemory()
	} else {
		store, err := storage.Open(cfg.DBPath)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		s.store = store
	}
	s.closers = append([]io.Closer{s.store}, s.closers...)

	s.picker = picker.New(picker.Options{Mode: mode, Constraints: c, Now: opts.now})
	if err := picker.Restore(s.picker, s.store); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *session) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
