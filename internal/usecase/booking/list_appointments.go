package booking

import (
	"context"
	"time"

	domain "github.com/sharpcuts/barber-booking/internal/domain/booking"
	"github.com/sharpcuts/barber-booking/internal/dto"
	"github.com/sharpcuts/barber-booking/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointments(repo domain.Repository, loc *time.Location) *ListAppointments {
	return &ListAppointments{repo: repo, loc: loc}
}

// Execute lists the barber's appointments, optionally restricted to
// one calendar day, with service details resolved.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	barberID uint,
	date *time.Time,
) ([]dto.AppointmentView, error) {

	var (
		apps []models.Appointment
		err  error
	)

	if date != nil {
		start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.loc)
		end := start.Add(24 * time.Hour)
		apps, err = uc.repo.ListForPeriod(ctx, barberID, start, end)
	} else {
		apps, err = uc.repo.ListForBarber(ctx, barberID)
	}
	if err != nil {
		return nil, err
	}

	return uc.toViews(ctx, apps)
}

func (uc *ListAppointments) toViews(
	ctx context.Context,
	apps []models.Appointment,
) ([]dto.AppointmentView, error) {

	ids := make([]uint, 0, len(apps))
	for _, ap := range apps {
		ids = append(ids, ap.ID)
	}

	servicesByAppointment, err := uc.repo.ServicesForAppointments(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentView, 0, len(apps))
	for _, ap := range apps {
		out = append(out, appointmentView(ap, servicesByAppointment[ap.ID]))
	}
	return out, nil
}

func appointmentView(ap models.Appointment, services []models.Service) dto.AppointmentView {
	summaries := make([]dto.ServiceSummary, 0, len(services))
	for _, s := range services {
		summaries = append(summaries, dto.ServiceSummary{
			ID:       s.ID,
			Name:     s.Name,
			Duration: s.Duration,
			Price:    s.Price,
		})
	}

	return dto.AppointmentView{
		ID:            ap.ID,
		Reference:     ap.Reference,
		StartTime:     ap.StartTime,
		EndTime:       ap.EndTime,
		TotalDuration: ap.TotalDuration,
		Status:        ap.Status,
		Informed:      ap.Informed,
		CustomerName:  ap.CustomerName,
		CustomerPhone: ap.CustomerPhone,
		Services:      summaries,
	}
}
