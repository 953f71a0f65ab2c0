package leave

import (
	"context"
	"time"

	"github.com/sharpcuts/barber-booking/internal/audit"
	domain "github.com/sharpcuts/barber-booking/internal/domain/leave"
	"github.com/sharpcuts/barber-booking/internal/httperr"
	"github.com/sharpcuts/barber-booking/internal/models"
)

type AddInput struct {
	BarberID  uint
	Date      string // YYYY-MM-DD
	Type      string
	StartTime string // HH:mm, PARTIAL only
	EndTime   string
}

type Add struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAdd(repo domain.Repository, auditDispatcher *audit.Dispatcher) *Add {
	return &Add{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *Add) Execute(ctx context.Context, in AddInput) (*models.Leave, error) {

	if in.Date == "" {
		return nil, httperr.ErrValidation("missing_date", "Date is required.")
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrValidation("invalid_date", "Date must be YYYY-MM-DD.")
	}

	leaveType := domain.Type(in.Type)
	if in.Type == "" {
		leaveType = domain.TypeFullDay
	}
	if !leaveType.IsValid() {
		return nil, httperr.ErrValidation("invalid_leave_type", "Leave type must be FULL_DAY or PARTIAL.")
	}

	existing, err := uc.repo.ListForDate(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	l := &models.Leave{
		BarberID: in.BarberID,
		Date:     in.Date,
		Type:     string(leaveType),
	}

	switch leaveType {
	case domain.TypeFullDay:
		// Only one leave record per day in the full-day case.
		if len(existing) > 0 {
			return nil, httperr.ErrConflict("leave_exists", "Leave already exists for this date")
		}

	case domain.TypePartial:
		if err := validateWindow(in.StartTime, in.EndTime); err != nil {
			return nil, err
		}
		for _, other := range existing {
			if other.Type != string(domain.TypePartial) {
				continue
			}
			if domain.WindowsOverlap(in.StartTime, in.EndTime, other.StartTime, other.EndTime) {
				return nil, httperr.ErrConflict("leave_overlap", "Partial leave overlaps with existing slot")
			}
		}
		l.StartTime = in.StartTime
		l.EndTime = in.EndTime
	}

	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &in.BarberID,
		Action:   "leave_added",
		Entity:   "leave",
		EntityID: &l.ID,
		Metadata: map[string]any{"date": l.Date, "type": l.Type},
	})

	return l, nil
}

func validateWindow(start, end string) error {
	if start == "" || end == "" {
		return httperr.ErrValidation("missing_window", "Partial leave requires startTime and endTime.")
	}
	for _, hm := range []string{start, end} {
		if _, err := time.Parse("15:04", hm); err != nil {
			return httperr.ErrValidation("invalid_window", "Leave times must be HH:mm.")
		}
	}
	if start >= end {
		return httperr.ErrValidation("invalid_window", "Leave start must be before end.")
	}
	return nil
}
