package selection

import (
	"fmt"
	"strings"
	"time"

	"datepick/internal/calendar"
)

// Encode renders the selection in the text form stored by the host:
//
//	single:2024-03-01
//	range:2024-03-05..2024-03-10   (range:2024-03-05.. while awaiting the end)
//	multiple:2024-03-01,2024-03-04
//	week:2024-03-03..2024-03-09
//
// An empty selection encodes as "".
func (s Selection) Encode() string {
	if s.IsEmpty() {
		return ""
	}
	var body string
	switch s.Mode {
	case Single:
		body = s.Day.String()
	case Range, Week, Month:
		body = s.Start.String() + ".."
		if s.End != nil {
			body += s.End.String()
		}
	case Multiple:
		parts := make([]string, len(s.Dates))
		for i, d := range s.Dates {
			parts[i] = d.String()
		}
		body = strings.Join(parts, ",")
	}
	return s.Mode.String() + ":" + body
}

// Decode parses Encode's output. The empty string decodes to an empty
// selection in fallback mode.
func Decode(v string, fallback Mode) (Selection, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return New(fallback), nil
	}
	name, body, ok := strings.Cut(v, ":")
	if !ok {
		return Selection{}, fmt.Errorf("decode selection %q: missing mode prefix", v)
	}
	mode, err := ParseMode(name)
	if err != nil {
		return Selection{}, fmt.Errorf("decode selection %q: %w", v, err)
	}
	s := New(mode)
	switch mode {
	case Single:
		d, err := calendar.ParseDate(body)
		if err != nil {
			return Selection{}, err
		}
		s.Day = &d
	case Range, Week, Month:
		from, to, ok := strings.Cut(body, "..")
		if !ok {
			return Selection{}, fmt.Errorf("decode selection %q: want start..end", v)
		}
		start, err := calendar.ParseDate(from)
		if err != nil {
			return Selection{}, err
		}
		s.Start = &start
		if strings.TrimSpace(to) != "" {
			end, err := calendar.ParseDate(to)
			if err != nil {
				return Selection{}, err
			}
			if end.Before(start) {
				return Selection{}, fmt.Errorf("decode selection %q: end before start", v)
			}
			s.End = &end
		} else if mode != Range {
			return Selection{}, fmt.Errorf("decode selection %q: %s needs an end", v, mode)
		}
	case Multiple:
		for _, part := range strings.Split(body, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			d, err := calendar.ParseDate(part)
			if err != nil {
				return Selection{}, err
			}
			if !s.contains(d) {
				s.Dates = append(s.Dates, d)
			}
		}
	}
	return s, nil
}

// Validate reports a value that Select could not have completed, or the first
// stored day that the constraints reject.
func (s Selection) Validate(c calendar.Constraints) error {
	if err := s.checkShape(); err != nil {
		return err
	}
	for _, d := range s.Values() {
		if r := c.Reason(d); r != calendar.Enabled {
			return fmt.Errorf("%s: %s", d, r)
		}
	}
	return nil
}

func (s Selection) checkShape() error {
	if s.IsEmpty() {
		return nil
	}
	if s.Mode != Single && s.Mode != Multiple && s.Start == nil {
		return fmt.Errorf("%s has no start", s.Mode)
	}
	switch s.Mode {
	case Range:
		if s.End == nil {
			return fmt.Errorf("range %s has no end", s.Start)
		}
		if *s.End == *s.Start {
			return fmt.Errorf("range starts and ends on %s", s.Start)
		}
	case Week:
		if s.Start.Weekday() != time.Sunday || s.End == nil || *s.End != s.Start.AddDays(6) {
			return fmt.Errorf("%s is not a Sunday to Saturday week", s.Encode())
		}
	case Month:
		if *s.Start != s.Start.FirstOfMonth() || s.End == nil || *s.End != s.Start.LastOfMonth() {
			return fmt.Errorf("%s is not a whole month", s.Encode())
		}
	}
	return nil
}
