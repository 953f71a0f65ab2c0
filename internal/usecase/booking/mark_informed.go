package booking

import (
	"context"

	"github.com/sharpcuts/barber-booking/internal/audit"
	domain "github.com/sharpcuts/barber-booking/internal/domain/booking"
	"github.com/sharpcuts/barber-booking/internal/models"
)

type MarkInformed struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkInformed(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *MarkInformed {
	return &MarkInformed{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute flags an appointment as communicated-around-a-conflict.
// From then on it is invisible to availability and conflict checks
// but stays in history.
func (uc *MarkInformed) Execute(
	ctx context.Context,
	barberID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if ap.Informed {
		return ap, nil
	}

	ap.Informed = true
	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &barberID,
		Action:   "appointment_informed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
