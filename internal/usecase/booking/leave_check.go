package booking

import (
	"time"

	leavedomain "github.com/sharpcuts/barber-booking/internal/domain/leave"
	"github.com/sharpcuts/barber-booking/internal/models"
	"github.com/sharpcuts/barber-booking/internal/schedule"
)

// leaveBlocks reports whether any of the day's leaves block the span.
// A full-day leave blocks everything; a partial leave blocks on
// window overlap. Any hit is terminal, so order among leaves does not
// matter.
func leaveBlocks(
	leaves []models.Leave,
	date time.Time,
	span schedule.Interval,
	loc *time.Location,
) bool {

	for _, l := range leaves {
		switch leavedomain.Type(l.Type) {
		case leavedomain.TypeFullDay:
			return true
		case leavedomain.TypePartial:
			window, ok := leaveWindow(l, date, loc)
			if ok && span.Overlaps(window) {
				return true
			}
		}
	}
	return false
}

// leaveWindow materializes a partial leave's HH:mm window on the
// given calendar date.
func leaveWindow(l models.Leave, date time.Time, loc *time.Location) (schedule.Interval, bool) {
	start, err := parseHM(l.StartTime, date, loc)
	if err != nil {
		return schedule.Interval{}, false
	}
	end, err := parseHM(l.EndTime, date, loc)
	if err != nil {
		return schedule.Interval{}, false
	}
	return schedule.Interval{Start: start, End: end}, true
}

func parseHM(hm string, date time.Time, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	), nil
}
