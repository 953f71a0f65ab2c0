package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sharpcuts/barber-booking/internal/audit"
	domain "github.com/sharpcuts/barber-booking/internal/domain/booking"
	leavedomain "github.com/sharpcuts/barber-booking/internal/domain/leave"
	"github.com/sharpcuts/barber-booking/internal/httperr"
	"github.com/sharpcuts/barber-booking/internal/models"
	"github.com/sharpcuts/barber-booking/internal/schedule"
	"github.com/sharpcuts/barber-booking/internal/timezone"
	"github.com/sharpcuts/barber-booking/internal/validators"
)

type BookInput struct {
	BarberID      uint
	ServiceIDs    []uint
	StartTime     time.Time
	CustomerName  string
	CustomerPhone string
}

// Book is the authoritative acceptance or rejection of a booking
// request. Availability output is advisory; everything is re-checked
// here under a per-barber lock so two overlapping requests cannot
// both pass the conflict check before either writes.
type Book struct {
	repo   domain.Repository
	leaves leavedomain.Repository
	grid   *schedule.Grid
	locks  *barberLocks
	audit  *audit.Dispatcher
}

func NewBook(
	repo domain.Repository,
	leaves leavedomain.Repository,
	grid *schedule.Grid,
	auditDispatcher *audit.Dispatcher,
) *Book {
	return &Book{
		repo:   repo,
		leaves: leaves,
		grid:   grid,
		locks:  newBarberLocks(),
		audit:  auditDispatcher,
	}
}

func (uc *Book) Execute(ctx context.Context, in BookInput) (*models.Appointment, error) {

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrValidation("empty_services", "At least one service is required.")
	}

	phone, err := validators.NormalizePhone(in.CustomerPhone)
	if err != nil {
		return nil, err
	}

	services, err := uc.repo.GetServicesByIDs(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	totalDuration, err := resolveTotalDuration(in.ServiceIDs, services)
	if err != nil {
		return nil, err
	}

	start := in.StartTime.In(uc.grid.Location())
	end := schedule.RoundUpToSlot(
		start.Add(time.Duration(totalDuration)*time.Minute),
		uc.grid.SlotDuration(),
	)

	// Leave re-check, conflict re-check and insert form one
	// serializable unit per barber.
	unlock := uc.locks.acquire(in.BarberID)
	defer unlock()

	leaves, err := uc.leaves.ListForDate(ctx, in.BarberID, timezone.DayKey(start))
	if err != nil {
		return nil, err
	}
	span := schedule.Interval{Start: start, End: end}
	if leaveBlocks(leaves, start, span, uc.grid.Location()) {
		return nil, httperr.ErrConflict("barber_unavailable", domain.ReasonOnLeave)
	}

	ap := &models.Appointment{
		Reference:     uuid.NewString(),
		BarberID:      in.BarberID,
		StartTime:     start,
		EndTime:       end,
		TotalDuration: totalDuration,
		Status:        string(domain.InitialStatus()),
		CustomerName:  in.CustomerName,
		CustomerPhone: phone,
	}

	if err := uc.repo.Reserve(ctx, ap, in.ServiceIDs); err != nil {
		if httperr.IsKind(err, httperr.KindConflict) {
			uc.audit.Dispatch(audit.Event{
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"barber_id": in.BarberID,
					"start":     start,
					"end":       end,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// resolveTotalDuration sums the durations of the requested services,
// failing when any id is unknown or inactive.
func resolveTotalDuration(requested []uint, found []models.Service) (int, error) {
	byID := make(map[uint]models.Service, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	total := 0
	for _, id := range requested {
		s, ok := byID[id]
		if !ok {
			return 0, httperr.ErrValidation("unknown_service", "One of the requested services does not exist.")
		}
		if !s.Active {
			return 0, httperr.ErrValidation("inactive_service", "One of the requested services is not bookable.")
		}
		total += s.Duration
	}

	if total <= 0 {
		return 0, httperr.ErrValidation("invalid_duration", "Requested services have no duration.")
	}
	return total, nil
}
