package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"datepick/internal/calendar"
	"datepick/internal/selection"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "datepick.db"
	appDir                = "datepick"
	envConfigPath         = "DATEPICK_CONFIG"
)

type Keymap struct {
	Quit    string `toml:"quit"`
	Left    string `toml:"left"`
	Right   string `toml:"right"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Select  string `toml:"select"`
	Prev    string `toml:"prev"`
	Next    string `toml:"next"`
	ZoomOut string `toml:"zoom_out"`
	Today   string `toml:"today"`
	Clear   string `toml:"clear"`
	GoTo    string `toml:"goto"`
	Confirm string `toml:"confirm"`
	Cancel  string `toml:"cancel"`
}

type Config struct {
	DBPath           string   `toml:"db_path"`
	Mode             string   `toml:"mode"`
	MinDate          string   `toml:"min_date"`
	MaxDate          string   `toml:"max_date"`
	DisabledDates    []string `toml:"disabled_dates"`
	DisabledWeekdays []string `toml:"disabled_weekdays"`
	LogFile          string   `toml:"log_file"`
	LogLevel         string   `toml:"log_level"`
	Keys             Keymap   `toml:"keys"`
}

// ResolveConfigPath prefers $DATEPICK_CONFIG, then the XDG config dir, then
// ~/.config.
func ResolveConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(envConfigPath)); p != "" {
		return p
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appDir, DefaultConfigFileName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", appDir, DefaultConfigFileName)
	}
	return DefaultConfigFileName
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig(path)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(filepath.Dir(path), DefaultDBName)
	}
	if cfg.Mode == "" {
		cfg.Mode = selection.Single.String()
	}
	cfg.Keys = cfg.Keys.withDefaults()
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig(path string) Config {
	return Config{
		DBPath:           filepath.Join(filepath.Dir(path), DefaultDBName),
		Mode:             selection.Single.String(),
		DisabledDates:    []string{},
		DisabledWeekdays: []string{},
		LogLevel:         "info",
		Keys:             defaultKeys(),
	}
}

func defaultKeys() Keymap {
	return Keymap{
		Quit:    "q",
		Left:    "h",
		Right:   "l",
		Up:      "k",
		Down:    "j",
		Select:  " ",
		Prev:    "[",
		Next:    "]",
		ZoomOut: "v",
		Today:   "t",
		Clear:   "x",
		GoTo:    "g",
		Confirm: "enter",
		Cancel:  "esc",
	}
}

// withDefaults fills keys left blank in a hand-edited file.
func (k Keymap) withDefaults() Keymap {
	d := defaultKeys()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&k.Quit, d.Quit)
	fill(&k.Left, d.Left)
	fill(&k.Right, d.Right)
	fill(&k.Up, d.Up)
	fill(&k.Down, d.Down)
	fill(&k.Select, d.Select)
	fill(&k.Prev, d.Prev)
	fill(&k.Next, d.Next)
	fill(&k.ZoomOut, d.ZoomOut)
	fill(&k.Today, d.Today)
	fill(&k.Clear, d.Clear)
	fill(&k.GoTo, d.GoTo)
	fill(&k.Confirm, d.Confirm)
	fill(&k.Cancel, d.Cancel)
	return k
}

func (c Config) SelectionMode() (selection.Mode, error) {
	return selection.ParseMode(c.Mode)
}

// Constraints converts the date fields. Weekdays accept names ("sunday",
// "sat") or numbers 0-6 with 0 for Sunday.
func (c Config) Constraints() (calendar.Constraints, error) {
	var out calendar.Constraints
	if strings.TrimSpace(c.MinDate) != "" {
		d, err := calendar.ParseDate(c.MinDate)
		if err != nil {
			return out, fmt.Errorf("min_date: %w", err)
		}
		out.Min = &d
	}
	if strings.TrimSpace(c.MaxDate) != "" {
		d, err := calendar.ParseDate(c.MaxDate)
		if err != nil {
			return out, fmt.Errorf("max_date: %w", err)
		}
		out.Max = &d
	}
	if out.Min != nil && out.Max != nil && out.Max.Before(*out.Min) {
		return out, fmt.Errorf("max_date %s is before min_date %s", out.Max, out.Min)
	}
	for _, v := range c.DisabledDates {
		d, err := calendar.ParseDate(v)
		if err != nil {
			return out, fmt.Errorf("disabled_dates: %w", err)
		}
		out.DisabledDates = append(out.DisabledDates, d)
	}
	for _, v := range c.DisabledWeekdays {
		wd, err := parseWeekday(v)
		if err != nil {
			return out, fmt.Errorf("disabled_weekdays: %w", err)
		}
		out.DisabledWeekdays = append(out.DisabledWeekdays, wd)
	}
	return out, nil
}

func parseWeekday(v string) (time.Weekday, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if len(v) == 1 && v[0] >= '0' && v[0] <= '6' {
		return time.Weekday(v[0] - '0'), nil
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		if v == name || (len(v) == 3 && strings.HasPrefix(name, v)) {
			return wd, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", v)
}
