package timegrid

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	ErrUnknownSlot     = errors.New("time slot is not part of the grid")
	ErrInvalidDate     = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrDateOutOfRange  = errors.New("date is outside the bookable range")
	ErrInvalidGrid     = errors.New("invalid time grid configuration")
	ErrInvalidDuration = errors.New("reservation duration must be positive")
)

// Slot is a bookable start time in zero-padded HH:MM form. Lexicographic order
// of slots equals time-of-day order.
type Slot string

func (s Slot) String() string { return string(s) }

// Date is a calendar day without a time component.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

// DateOf drops the clock part of t, keeping t's calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string     { return d.t.Format(dateLayout) }
func (d Date) Time() time.Time    { return d.t }
func (d Date) IsZero() bool       { return d.t.IsZero() }
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// Grid is the fixed set of bookable start times for every day in an inclusive
// date range, together with the fixed reservation duration.
type Grid struct {
	slots    []Slot
	offsets  []time.Duration // since midnight, parallel to slots
	index    map[Slot]int
	duration time.Duration
	from     Date
	to       Date
}

func New(slots []string, duration time.Duration, from, to string) (*Grid, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: no time slots", ErrInvalidGrid)
	}

	g := &Grid{
		slots:    make([]Slot, 0, len(slots)),
		offsets:  make([]time.Duration, 0, len(slots)),
		index:    make(map[Slot]int, len(slots)),
		duration: duration,
	}
	for i, raw := range slots {
		raw = strings.TrimSpace(raw)
		t, err := time.Parse("15:04", raw)
		if err != nil || t.Format("15:04") != raw {
			return nil, fmt.Errorf("%w: slot %q is not HH:MM", ErrInvalidGrid, raw)
		}
		off := time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
		if i > 0 && off <= g.offsets[i-1] {
			return nil, fmt.Errorf("%w: slots must be strictly increasing", ErrInvalidGrid)
		}
		g.slots = append(g.slots, Slot(raw))
		g.offsets = append(g.offsets, off)
		g.index[Slot(raw)] = i
	}

	var err error
	if g.from, err = ParseDate(from); err != nil {
		return nil, fmt.Errorf("%w: range start: %v", ErrInvalidGrid, err)
	}
	if g.to, err = ParseDate(to); err != nil {
		return nil, fmt.Errorf("%w: range end: %v", ErrInvalidGrid, err)
	}
	if g.to.Before(g.from) {
		return nil, fmt.Errorf("%w: range end before start", ErrInvalidGrid)
	}

	return g, nil
}

// Slots returns the grid in order. The slice is a copy.
func (g *Grid) Slots() []Slot {
	out := make([]Slot, len(g.slots))
	copy(out, g.slots)
	return out
}

func (g *Grid) Duration() time.Duration { return g.duration }
func (g *Grid) From() Date              { return g.from }
func (g *Grid) To() Date                { return g.to }

func (g *Grid) Slot(s string) (Slot, error) {
	slot := Slot(strings.TrimSpace(s))
	if _, ok := g.index[slot]; !ok {
		return "", ErrUnknownSlot
	}
	return slot, nil
}

func (g *Grid) InRange(d Date) bool {
	return !d.Before(g.from) && !d.After(g.to)
}

// ParseDate parses s and checks it against the bookable range.
func (g *Grid) ParseDate(s string) (Date, error) {
	d, err := ParseDate(s)
	if err != nil {
		return Date{}, err
	}
	if !g.InRange(d) {
		return Date{}, ErrDateOutOfRange
	}
	return d, nil
}

func (g *Grid) Validate(date, slot string) (Date, Slot, error) {
	d, err := g.ParseDate(date)
	if err != nil {
		return Date{}, "", err
	}
	s, err := g.Slot(slot)
	if err != nil {
		return Date{}, "", err
	}
	return d, s, nil
}

// Overlapping returns, in grid order, every start time whose reservation
// interval intersects the interval starting at s (s itself included).
// Intervals [a, a+d) and [b, b+d) overlap iff a < b+d and b < a+d.
func (g *Grid) Overlapping(s Slot) ([]Slot, error) {
	i, ok := g.index[s]
	if !ok {
		return nil, ErrUnknownSlot
	}
	start := g.offsets[i]
	out := make([]Slot, 0, len(g.slots))
	for j, other := range g.offsets {
		if start < other+g.duration && other < start+g.duration {
			out = append(out, g.slots[j])
		}
	}
	return out, nil
}

// EndOf returns the HH:MM at which a reservation starting at s ends.
func (g *Grid) EndOf(s Slot) (string, error) {
	i, ok := g.index[s]
	if !ok {
		return "", ErrUnknownSlot
	}
	end := g.offsets[i] + g.duration
	return fmt.Sprintf("%02d:%02d", int(end.Hours()), int(end.Minutes())%60), nil
}
