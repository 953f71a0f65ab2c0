package leave

import (
	"context"

	"github.com/sharpcuts/barber-booking/internal/audit"
	domain "github.com/sharpcuts/barber-booking/internal/domain/leave"
)

type Remove struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemove(repo domain.Repository, auditDispatcher *audit.Dispatcher) *Remove {
	return &Remove{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *Remove) Execute(ctx context.Context, barberID uint, leaveID uint) error {
	if err := uc.repo.Delete(ctx, barberID, leaveID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &barberID,
		Action:   "leave_removed",
		Entity:   "leave",
		EntityID: &leaveID,
	})

	return nil
}
