package schedule

import (
	"fmt"
	"time"
)

// Grid discretizes the shop's daily operating window into fixed-size
// candidate slots. It is a pure function of the calendar date: the
// same date always yields the same slots.
type Grid struct {
	openMin  int // minutes from midnight
	closeMin int
	slot     time.Duration
	loc      *time.Location
}

// Slot is one candidate booking window on the grid.
type Slot struct {
	Interval
	Label string
}

// NewGrid builds a grid from "15:04" open/close times. The window
// must be non-empty and the granularity positive.
func NewGrid(open, close string, slotMinutes int, loc *time.Location) (*Grid, error) {
	openMin, err := parseClock(open)
	if err != nil {
		return nil, fmt.Errorf("invalid open time %q: %w", open, err)
	}
	closeMin, err := parseClock(close)
	if err != nil {
		return nil, fmt.Errorf("invalid close time %q: %w", close, err)
	}
	if closeMin <= openMin {
		return nil, fmt.Errorf("close time %q is not after open time %q", close, open)
	}
	if slotMinutes <= 0 {
		return nil, fmt.Errorf("slot granularity must be positive, got %d", slotMinutes)
	}

	return &Grid{
		openMin:  openMin,
		closeMin: closeMin,
		slot:     time.Duration(slotMinutes) * time.Minute,
		loc:      loc,
	}, nil
}

func parseClock(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func (g *Grid) Location() *time.Location {
	return g.loc
}

func (g *Grid) SlotDuration() time.Duration {
	return g.slot
}

// OpenAt returns the opening instant on the given calendar date.
func (g *Grid) OpenAt(date time.Time) time.Time {
	return g.atMinute(date, g.openMin)
}

// CloseAt returns the closing instant on the given calendar date.
func (g *Grid) CloseAt(date time.Time) time.Time {
	return g.atMinute(date, g.closeMin)
}

func (g *Grid) atMinute(date time.Time, min int) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		min/60, min%60, 0, 0,
		g.loc,
	)
}

// Slots returns the ordered candidate slots covering [open, close) in
// granularity-sized steps. A trailing remainder shorter than one
// granularity is dropped.
func (g *Grid) Slots(date time.Time) []Slot {
	open := g.OpenAt(date)
	close := g.CloseAt(date)

	var slots []Slot
	for cur := open; !cur.Add(g.slot).After(close); cur = cur.Add(g.slot) {
		end := cur.Add(g.slot)
		slots = append(slots, Slot{
			Interval: Interval{Start: cur, End: end},
			Label:    cur.Format("15:04") + " - " + end.Format("15:04"),
		})
	}
	return slots
}

// RoundUpToSlot rounds an instant up to the next grid boundary,
// counted from local midnight. Rounding an already-aligned instant is
// a no-op.
func RoundUpToSlot(t time.Time, slot time.Duration) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := t.Sub(midnight)

	rounded := offset / slot * slot
	if rounded < offset {
		rounded += slot
	}
	return midnight.Add(rounded)
}
