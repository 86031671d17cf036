package selection

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datepick/internal/calendar"
)

func day(v string) calendar.Date {
	d, err := calendar.ParseDate(v)
	if err != nil {
		panic(err)
	}
	return d
}

func clickAll(s Selection, c calendar.Constraints, dates ...string) Selection {
	for _, v := range dates {
		s = Select(s, day(v), c)
	}
	return s
}

func TestParseMode(t *testing.T) {
	for i, name := range []string{"single", "range", "multiple", "week", "month"} {
		m, err := ParseMode(name)
		require.NoError(t, err)
		assert.Equal(t, Mode(i), m)
		assert.Equal(t, name, m.String())
	}
	m, err := ParseMode(" Range ")
	require.NoError(t, err)
	assert.Equal(t, Range, m)

	_, err = ParseMode("decade")
	assert.Error(t, err)
	assert.Equal(t, "mode(9)", Mode(9).String())
}

func TestSingleReplaces(t *testing.T) {
	s := clickAll(New(Single), calendar.Constraints{}, "2024-03-10", "2024-03-12")
	require.NotNil(t, s.Day)
	assert.Equal(t, day("2024-03-12"), *s.Day)
	assert.True(t, s.IsSelected(day("2024-03-12")))
	assert.False(t, s.IsSelected(day("2024-03-10")))
	assert.True(t, s.Complete())
}

func TestRangeTwoClickProtocol(t *testing.T) {
	c := calendar.Constraints{}
	s := Select(New(Range), day("2024-03-10"), c)
	assert.True(t, s.AwaitingEnd())
	assert.False(t, s.Complete())

	s = Select(s, day("2024-03-05"), c)
	require.NotNil(t, s.Start)
	require.NotNil(t, s.End)
	assert.Equal(t, day("2024-03-05"), *s.Start)
	assert.Equal(t, day("2024-03-10"), *s.End)
	assert.True(t, s.Complete())

	s = Select(s, day("2024-04-01"), c)
	assert.Equal(t, day("2024-04-01"), *s.Start)
	assert.Nil(t, s.End)
}

func TestRangeForwardClick(t *testing.T) {
	s := clickAll(New(Range), calendar.Constraints{}, "2024-03-05", "2024-03-10")
	assert.Equal(t, day("2024-03-05"), *s.Start)
	assert.Equal(t, day("2024-03-10"), *s.End)
}

func TestRangeSameDateIsNoop(t *testing.T) {
	start := day("2024-03-10")
	s := Selection{Mode: Range, Start: &start}

	got := Select(s, day("2024-03-10"), calendar.Constraints{})
	assert.True(t, got.Equal(s))
	assert.Nil(t, got.End)
	assert.True(t, got.AwaitingEnd())
}

func TestMultipleToggleIsIdentityTwice(t *testing.T) {
	c := calendar.Constraints{}
	base := clickAll(New(Multiple), c, "2024-03-01", "2024-03-04")

	once := Select(base, day("2024-03-07"), c)
	assert.True(t, once.IsSelected(day("2024-03-07")))
	twice := Select(once, day("2024-03-07"), c)
	assert.True(t, twice.Equal(base))

	removed := Select(base, day("2024-03-01"), c)
	if diff := cmp.Diff([]calendar.Date{day("2024-03-04")}, removed.Dates); diff != "" {
		t.Fatalf("dates mismatch (-want +got):\n%s", diff)
	}
}

func TestMultipleKeepsInsertionOrder(t *testing.T) {
	s := clickAll(New(Multiple), calendar.Constraints{}, "2024-03-09", "2024-03-01", "2024-03-05")
	want := []calendar.Date{day("2024-03-09"), day("2024-03-01"), day("2024-03-05")}
	assert.Equal(t, want, s.Dates)
}

func TestSelectDoesNotAliasInput(t *testing.T) {
	c := calendar.Constraints{}
	base := clickAll(New(Multiple), c, "2024-03-01", "2024-03-02", "2024-03-03")
	snapshot := append([]calendar.Date(nil), base.Dates...)

	_ = Select(base, day("2024-03-01"), c)
	_ = Select(base, day("2024-03-09"), c)
	assert.Equal(t, snapshot, base.Dates)
}

func TestDisabledDateRejected(t *testing.T) {
	minDate := day("2024-03-03")
	c := calendar.Constraints{
		Min:              &minDate,
		DisabledDates:    []calendar.Date{day("2024-03-12")},
		DisabledWeekdays: []time.Weekday{time.Saturday},
	}
	start := day("2024-03-05")

	cases := []struct {
		name string
		sel  Selection
	}{
		{"single", New(Single)},
		{"range awaiting end", Selection{Mode: Range, Start: &start}},
		{"multiple", clickAll(New(Multiple), c, "2024-03-05")},
		{"week", New(Week)},
		{"month", New(Month)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, v := range []string{"2024-03-12", "2024-03-01", "2024-03-09"} {
				got := Select(tc.sel, day(v), c)
				assert.True(t, got.Equal(tc.sel), v)
			}
		})
	}

	assert.True(t, Select(New(Single), calendar.Date{}, c).IsEmpty())
}

func TestIsDateInRangeExclusive(t *testing.T) {
	s := clickAll(New(Range), calendar.Constraints{}, "2024-03-01", "2024-03-05")

	assert.False(t, s.IsDateInRange(day("2024-03-01")))
	assert.False(t, s.IsDateInRange(day("2024-03-05")))
	assert.True(t, s.IsDateInRange(day("2024-03-03")))
	assert.True(t, s.IsRangeStart(day("2024-03-01")))
	assert.True(t, s.IsRangeEnd(day("2024-03-05")))
	assert.True(t, s.IsSelected(day("2024-03-05")))
	assert.False(t, s.IsSelected(day("2024-03-03")))
}

func TestWeekAndMonthModes(t *testing.T) {
	c := calendar.Constraints{}

	w := Select(New(Week), day("2024-03-13"), c)
	assert.Equal(t, day("2024-03-10"), *w.Start)
	assert.Equal(t, day("2024-03-16"), *w.End)
	assert.True(t, w.Complete())
	assert.True(t, w.IsDateInRange(day("2024-03-13")))

	m := Select(New(Month), day("2024-02-13"), c)
	assert.Equal(t, day("2024-02-01"), *m.Start)
	assert.Equal(t, day("2024-02-29"), *m.End)

	again := Select(m, day("2024-05-02"), c)
	assert.Equal(t, day("2024-05-01"), *again.Start)
	assert.Equal(t, day("2024-05-31"), *again.End)
}

func TestPreviewHighlightsWithoutMutating(t *testing.T) {
	s := Select(New(Range), day("2024-03-10"), calendar.Constraints{})
	hover := day("2024-03-06")

	p := s.WithPreview(&hover)
	assert.True(t, p.IsDateInRange(day("2024-03-08")))
	assert.False(t, p.IsDateInRange(day("2024-03-06")))
	assert.False(t, p.IsDateInRange(day("2024-03-10")))
	assert.Nil(t, s.End)

	done := Select(s, day("2024-03-12"), calendar.Constraints{})
	ignored := done.WithPreview(&hover)
	assert.Nil(t, ignored.Hover)
	assert.True(t, ignored.IsDateInRange(day("2024-03-11")))
	assert.False(t, ignored.IsDateInRange(day("2024-03-08")))
}

func TestClearAndValues(t *testing.T) {
	s := clickAll(New(Range), calendar.Constraints{}, "2024-03-01", "2024-03-05")
	assert.Equal(t, []calendar.Date{day("2024-03-01"), day("2024-03-05")}, s.Values())

	cleared := s.Clear()
	assert.True(t, cleared.IsEmpty())
	assert.Equal(t, Range, cleared.Mode)
	assert.Empty(t, cleared.Values())
}
