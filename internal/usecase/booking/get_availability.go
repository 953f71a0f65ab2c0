package booking

import (
	"context"

	domain "github.com/sharpcuts/barber-booking/internal/domain/booking"
	leavedomain "github.com/sharpcuts/barber-booking/internal/domain/leave"
	"github.com/sharpcuts/barber-booking/internal/schedule"
	"github.com/sharpcuts/barber-booking/internal/timezone"
)

type GetAvailability struct {
	repo   domain.Repository
	leaves leavedomain.Repository
	grid   *schedule.Grid
	clock  schedule.Clock
}

func NewGetAvailability(
	repo domain.Repository,
	leaves leavedomain.Repository,
	grid *schedule.Grid,
	clock schedule.Clock,
) *GetAvailability {
	return &GetAvailability{
		repo:   repo,
		leaves: leaves,
		grid:   grid,
		clock:  clock,
	}
}

// Execute classifies every candidate slot of the day. Each slot is
// checked against the full span a booking of the requested duration
// would occupy, not just the slot's own grid span. The verdicts are
// advisory: the authoritative check happens again on booking.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.Slot, error) {

	duration := in.Duration
	if duration <= 0 {
		duration = uc.grid.SlotDuration()
	}

	candidates := uc.grid.Slots(in.Date)
	closeAt := uc.grid.CloseAt(in.Date)

	leaves, err := uc.leaves.ListForDate(ctx, in.BarberID, timezone.DayKey(in.Date))
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListBlocking(ctx, in.BarberID, uc.grid.OpenAt(in.Date), closeAt)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	out := make([]domain.Slot, 0, len(candidates))
	for _, c := range candidates {
		span := schedule.Interval{Start: c.Start, End: c.Start.Add(duration)}

		available := true
		reason := ""

		if leaveBlocks(leaves, in.Date, span, uc.grid.Location()) {
			available = false
			reason = domain.ReasonOnLeave
		}

		if available {
			for _, ap := range booked {
				if span.Overlaps(schedule.Interval{Start: ap.StartTime, End: ap.EndTime}) {
					available = false
					reason = domain.ReasonBooked
					break
				}
			}
		}

		if available && span.End.After(closeAt) {
			available = false
			reason = domain.ReasonPastClosing
		}

		if available && c.Start.Before(now) {
			available = false
			reason = domain.ReasonTimePassed
		}

		out = append(out, domain.Slot{
			StartTime: c.Start,
			EndTime:   c.End,
			Label:     c.Label,
			Available: available,
			Reason:    reason,
		})
	}

	return out, nil
}
