package valueobject

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar-day layout used for range bounds and daily buckets
const DateLayout = "2006-01-02"

// MonthLayout is the layout used for monthly buckets
const MonthLayout = "2006-01"

// DateRange is an inclusive calendar-day window.
// The lower bound starts at 00:00:00 of its day and the upper bound runs
// through 23:59:59.999 of its day. Either bound may be open.
type DateRange struct {
	start    time.Time
	end      time.Time
	hasStart bool
	hasEnd   bool
}

// NewDateRange creates a closed range covering the calendar days of from and to
func NewDateRange(from, to time.Time) (DateRange, error) {
	r := DateRange{
		start:    StartOfDay(from),
		end:      EndOfDay(to),
		hasStart: true,
		hasEnd:   true,
	}
	if r.end.Before(r.start) {
		return DateRange{}, errors.New("date range end cannot be before start")
	}
	return r, nil
}

// NewDateRangeFrom creates a range open at the upper end
func NewDateRangeFrom(from time.Time) DateRange {
	return DateRange{start: StartOfDay(from), hasStart: true}
}

// NewDateRangeUntil creates a range open at the lower end
func NewDateRangeUntil(to time.Time) DateRange {
	return DateRange{end: EndOfDay(to), hasEnd: true}
}

// ParseDateRange builds a range from optional YYYY-MM-DD strings interpreted in loc.
// It returns nil when both bounds are empty.
func ParseDateRange(from, to string, loc *time.Location) (*DateRange, error) {
	if from == "" && to == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}

	var fromDate, toDate time.Time
	var err error
	if from != "" {
		if fromDate, err = time.ParseInLocation(DateLayout, from, loc); err != nil {
			return nil, fmt.Errorf("invalid date_from %q: %w", from, err)
		}
	}
	if to != "" {
		if toDate, err = time.ParseInLocation(DateLayout, to, loc); err != nil {
			return nil, fmt.Errorf("invalid date_to %q: %w", to, err)
		}
	}

	var r DateRange
	switch {
	case from != "" && to != "":
		if r, err = NewDateRange(fromDate, toDate); err != nil {
			return nil, err
		}
	case from != "":
		r = NewDateRangeFrom(fromDate)
	default:
		r = NewDateRangeUntil(toDate)
	}
	return &r, nil
}

// Start returns the inclusive lower bound and whether it is set
func (r DateRange) Start() (time.Time, bool) {
	return r.start, r.hasStart
}

// End returns the inclusive upper bound and whether it is set
func (r DateRange) End() (time.Time, bool) {
	return r.end, r.hasEnd
}

// Contains reports whether t falls inside the range
func (r DateRange) Contains(t time.Time) bool {
	if r.hasStart && t.Before(r.start) {
		return false
	}
	if r.hasEnd && t.After(r.end) {
		return false
	}
	return true
}

// Key returns a stable identifier for the range, suitable for cache keys
func (r DateRange) Key() string {
	from, to := "*", "*"
	if r.hasStart {
		from = r.start.Format(DateLayout)
	}
	if r.hasEnd {
		to = r.end.Format(DateLayout)
	}
	return from + "_" + to
}

// String implements fmt.Stringer
func (r DateRange) String() string {
	return r.Key()
}

// InRange reports whether t is inside r; a nil range includes everything
func InRange(r *DateRange, t time.Time) bool {
	if r == nil {
		return true
	}
	return r.Contains(t)
}

// StartOfDay truncates t to 00:00:00 of its calendar day in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of t's calendar day in t's location
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}
