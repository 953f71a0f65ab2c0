package booking

import (
	"context"

	"github.com/sharpcuts/barber-booking/internal/audit"
	domain "github.com/sharpcuts/barber-booking/internal/domain/booking"
	"github.com/sharpcuts/barber-booking/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	barberID uint,
	appointmentID uint,
	status string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanTransition(domain.Status(ap.Status), domain.Status(status)); err != nil {
		return nil, err
	}

	ap.Status = status
	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &barberID,
		Action:   "appointment_status_" + status,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
