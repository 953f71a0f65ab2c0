package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/sharpcuts/barber-booking/internal/domain/booking"
	"github.com/sharpcuts/barber-booking/internal/httperr"
	"github.com/sharpcuts/barber-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BookingGormRepository) GetServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) CountActiveServices(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("active = ?", true).
		Count(&count).Error
	return count, err
}

func (r *BookingGormRepository) ServicesForAppointments(
	ctx context.Context,
	appointmentIDs []uint,
) (map[uint][]models.Service, error) {

	out := make(map[uint][]models.Service, len(appointmentIDs))
	if len(appointmentIDs) == 0 {
		return out, nil
	}

	var links []models.AppointmentService
	if err := r.db.WithContext(ctx).
		Where("appointment_id IN ?", appointmentIDs).
		Order("appointment_id ASC, position ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}

	serviceIDs := make([]uint, 0, len(links))
	for _, l := range links {
		serviceIDs = append(serviceIDs, l.ServiceID)
	}

	byID := make(map[uint]models.Service, len(serviceIDs))
	if len(serviceIDs) > 0 {
		var services []models.Service
		if err := r.db.WithContext(ctx).
			Where("id IN ?", serviceIDs).
			Find(&services).Error; err != nil {
			return nil, err
		}
		for _, s := range services {
			byID[s.ID] = s
		}
	}

	for _, l := range links {
		// deleted services are simply absent
		if s, ok := byID[l.ServiceID]; ok {
			out[l.AppointmentID] = append(out[l.AppointmentID], s)
		}
	}
	return out, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListBlocking(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time").
		Where(
			"barber_id = ? AND status = ? AND informed = ? AND start_time < ? AND end_time > ?",
			barberID, string(domain.StatusConfirmed), false, end, start,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

// Reserve re-checks the interval and inserts inside one transaction.
// On Postgres the conflict rows are locked FOR UPDATE and the
// appointments_no_overlap exclusion constraint backstops the check.
func (r *BookingGormRepository) Reserve(
	ctx context.Context,
	ap *models.Appointment,
	serviceIDs []uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		q := tx.Where(
			"barber_id = ? AND status = ? AND informed = ? AND start_time < ? AND end_time > ?",
			ap.BarberID, string(domain.StatusConfirmed), false, ap.EndTime, ap.StartTime,
		)
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var conflicts []models.Appointment
		if err := q.Find(&conflicts).Error; err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return httperr.ErrConflict("slot_already_booked", "Slot already booked")
		}

		if err := tx.Create(ap).Error; err != nil {
			if httperr.IsExclusionConflict(err) {
				return httperr.ErrConflict("slot_already_booked", "Slot already booked")
			}
			return err
		}

		links := make([]models.AppointmentService, 0, len(serviceIDs))
		for i, sid := range serviceIDs {
			links = append(links, models.AppointmentService{
				AppointmentID: ap.ID,
				ServiceID:     sid,
				Position:      i,
			})
		}
		if len(links) == 0 {
			return nil
		}
		return tx.Create(&links).Error
	})
}

// --------------------------------------------------
// State changes / listing
// --------------------------------------------------

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) ListForBarber(
	ctx context.Context,
	barberID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("start_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *BookingGormRepository) ListForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND start_time >= ? AND start_time < ?",
			barberID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
