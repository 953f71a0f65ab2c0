package booking

import (
	"context"
	"time"

	"github.com/sharpcuts/barber-booking/internal/models"
)

type Repository interface {
	// -------- Services --------
	GetServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	CountActiveServices(ctx context.Context) (int64, error)

	// ServicesForAppointments resolves the ordered service lists of
	// the given appointments. Services deleted since booking are
	// silently absent.
	ServicesForAppointments(
		ctx context.Context,
		appointmentIDs []uint,
	) (map[uint][]models.Service, error)

	// -------- Availability --------

	// ListBlocking returns the confirmed, non-informed appointments
	// whose intervals intersect [start, end), ordered by start time.
	ListBlocking(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Booking --------

	// Reserve atomically re-checks the appointment's interval for
	// conflicts and inserts it together with its service links.
	// Returns a conflict error if the interval is already taken.
	Reserve(
		ctx context.Context,
		ap *models.Appointment,
		serviceIDs []uint,
	) error

	// -------- State changes / listing --------
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListForBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.Appointment, error)

	ListForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
