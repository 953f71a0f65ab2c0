package booking

import (
	"context"
	"sort"
	"time"

	domain "github.com/sharpcuts/barber-booking/internal/domain/booking"
	leavedomain "github.com/sharpcuts/barber-booking/internal/domain/leave"
	"github.com/sharpcuts/barber-booking/internal/dto"
	"github.com/sharpcuts/barber-booking/internal/models"
	"github.com/sharpcuts/barber-booking/internal/schedule"
	"github.com/sharpcuts/barber-booking/internal/timezone"
)

const upcomingLimit = 5

type Dashboard struct {
	repo   domain.Repository
	leaves leavedomain.Repository
	clock  schedule.Clock
}

func NewDashboard(
	repo domain.Repository,
	leaves leavedomain.Repository,
	clock schedule.Clock,
) *Dashboard {
	return &Dashboard{
		repo:   repo,
		leaves: leaves,
		clock:  clock,
	}
}

func (uc *Dashboard) Execute(ctx context.Context, barberID uint) (*dto.DashboardView, error) {

	now := uc.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.Add(24 * time.Hour)

	apps, err := uc.repo.ListForBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(apps))
	for _, ap := range apps {
		ids = append(ids, ap.ID)
	}
	servicesByAppointment, err := uc.repo.ServicesForAppointments(ctx, ids)
	if err != nil {
		return nil, err
	}

	view := &dto.DashboardView{}
	view.Appointments.Total = len(apps)

	upcoming := make([]dto.AppointmentView, 0, upcomingLimit)
	for _, ap := range apps {
		services := servicesByAppointment[ap.ID]

		if !ap.StartTime.Before(today) && ap.StartTime.Before(tomorrow) {
			view.Appointments.Today++
			if ap.Status == string(domain.StatusCompleted) {
				view.RevenueToday += revenue(services)
			}
		}

		if ap.Status == string(domain.StatusCompleted) {
			view.RevenueCompleted += revenue(services)
		}

		// Informed and completed appointments never show as upcoming.
		if !ap.Informed && ap.Status != string(domain.StatusCompleted) && ap.StartTime.After(now) {
			upcoming = append(upcoming, appointmentView(ap, services))
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].StartTime.Before(upcoming[j].StartTime)
	})
	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}
	view.Appointments.Upcoming = upcoming

	leaves, err := uc.leaves.List(ctx, barberID)
	if err != nil {
		return nil, err
	}
	view.Leaves.Total = len(leaves)
	view.Leaves.AllLeaves = leaves

	todayKey := timezone.DayKey(today)
	for _, l := range leaves {
		if l.Date == todayKey {
			view.Leaves.OnLeaveToday = true
			break
		}
	}

	servicesTotal, err := uc.repo.CountActiveServices(ctx)
	if err != nil {
		return nil, err
	}
	view.ServicesTotal = servicesTotal

	return view, nil
}

func revenue(services []models.Service) float64 {
	var sum float64
	for _, s := range services {
		sum += s.Price
	}
	return sum
}
