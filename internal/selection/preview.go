package selection

import "datepick/internal/calendar"

// Preview overlays a hovered day on a range that is waiting for its end. It
// only changes InRange highlighting; the stored selection is untouched.
type Preview struct {
	Selection
	Hover *calendar.Date
}

// WithPreview returns a marker for the grid. Outside range phase B the hover
// is ignored.
func (s Selection) WithPreview(hover *calendar.Date) Preview {
	if !s.AwaitingEnd() || hover == nil {
		return Preview{Selection: s}
	}
	h := *hover
	return Preview{Selection: s, Hover: &h}
}

func (p Preview) IsDateInRange(d calendar.Date) bool {
	if p.Hover == nil {
		return p.Selection.IsDateInRange(d)
	}
	lo, hi := *p.Start, *p.Hover
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	return d.After(lo) && d.Before(hi)
}

var _ calendar.Marker = Selection{}
var _ calendar.Marker = Preview{}
