package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrUnparsableDate   = errors.New("unparsable date")
)

const dayLayout = "2006-01-02"

// Day is a single calendar day, normalized to UTC midnight. Time-of-day in
// the input is discarded so overlap comparison never depends on clock values.
type Day struct {
	t time.Time
}

func NewDay(t time.Time) Day {
	y, m, d := t.UTC().Date()
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDay accepts a plain calendar date or any RFC 3339 timestamp.
func ParseDay(s string) (Day, error) {
	if t, err := time.Parse(dayLayout, s); err == nil {
		return NewDay(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NewDay(t), nil
	}
	return Day{}, ErrUnparsableDate
}

func (d Day) Time() time.Time    { return d.t }
func (d Day) String() string     { return d.t.Format(dayLayout) }
func (d Day) Next() Day          { return Day{t: d.t.AddDate(0, 0, 1)} }
func (d Day) Before(o Day) bool  { return d.t.Before(o.t) }
func (d Day) After(o Day) bool   { return d.t.After(o.t) }
func (d Day) Equal(o Day) bool   { return d.t.Equal(o.t) }

// ExpandDays lists every calendar day from start through end, inclusive of
// both endpoints. start == end yields a single day; an inverted range yields
// an empty slice. Pure and deterministic; callers enforce range preconditions.
func ExpandDays(start, end Day) []Day {
	var days []Day
	for cur := start; !cur.After(end); cur = cur.Next() {
		days = append(days, cur)
	}
	return days
}

// DateRange is a validated (startDate, endDate) pair with startDate strictly
// before endDate, the precondition every stored booking must satisfy.
type DateRange struct {
	start Day
	end   Day
}

func NewDateRange(start, end Day) (DateRange, error) {
	if !start.Before(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() Day { return r.start }
func (r DateRange) End() Day   { return r.end }

func (r DateRange) Expand() []Day {
	return ExpandDays(r.start, r.end)
}
