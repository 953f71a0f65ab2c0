package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sharpcuts/barber-booking/internal/audit"
	domain "github.com/sharpcuts/barber-booking/internal/domain/booking"
	"github.com/sharpcuts/barber-booking/internal/infra/repository"
	"github.com/sharpcuts/barber-booking/internal/models"
	"github.com/sharpcuts/barber-booking/internal/schedule"
	"github.com/sharpcuts/barber-booking/internal/testutil"
	"github.com/sharpcuts/barber-booking/internal/timezone"
	ucbooking "github.com/sharpcuts/barber-booking/internal/usecase/booking"
)

type fixture struct {
	db     *gorm.DB
	repo   *repository.BookingGormRepository
	leaves *repository.LeaveGormRepository
	grid   *schedule.Grid
	loc    *time.Location
	audit  *audit.Dispatcher

	now  time.Time
	date time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	loc := timezone.Location("")

	grid, err := schedule.NewGrid("10:00", "20:00", 30, loc)
	require.NoError(t, err)

	return &fixture{
		db:     db,
		repo:   repository.NewBookingGormRepository(db),
		leaves: repository.NewLeaveGormRepository(db),
		grid:   grid,
		loc:    loc,
		audit:  audit.NewDispatcher(audit.New(db)),

		// Evaluation happens the day before the queried date, so
		// no candidate slot is in the past unless a test says so.
		now:  time.Date(2026, 9, 14, 9, 0, 0, 0, loc),
		date: time.Date(2026, 9, 15, 0, 0, 0, 0, loc),
	}
}

func (f *fixture) clock() schedule.Clock {
	return schedule.ClockFunc(func() time.Time { return f.now })
}

func (f *fixture) availability() *ucbooking.GetAvailability {
	return ucbooking.NewGetAvailability(f.repo, f.leaves, f.grid, f.clock())
}

func (f *fixture) at(h, m int) time.Time {
	return time.Date(f.date.Year(), f.date.Month(), f.date.Day(), h, m, 0, 0, f.loc)
}

func (f *fixture) seedService(t *testing.T, name string, duration int, price float64) models.Service {
	t.Helper()
	s := models.Service{Name: name, Duration: duration, Price: price, Active: true}
	require.NoError(t, f.db.Create(&s).Error)
	return s
}

func (f *fixture) seedAppointment(t *testing.T, start, end time.Time, status string, informed bool) models.Appointment {
	t.Helper()
	ap := models.Appointment{
		Reference:     uuid.NewString(),
		BarberID:      1,
		StartTime:     start,
		EndTime:       end,
		TotalDuration: int(end.Sub(start) / time.Minute),
		Status:        status,
		Informed:      informed,
		CustomerName:  "Walk In",
		CustomerPhone: "+919876543210",
	}
	require.NoError(t, f.db.Create(&ap).Error)
	return ap
}

func (f *fixture) seedLeave(t *testing.T, leaveType, start, end string) models.Leave {
	t.Helper()
	l := models.Leave{
		BarberID:  1,
		Date:      timezone.DayKey(f.date),
		Type:      leaveType,
		StartTime: start,
		EndTime:   end,
	}
	require.NoError(t, f.db.Create(&l).Error)
	return l
}

func slotByLabel(t *testing.T, slots []domain.Slot, label string) domain.Slot {
	t.Helper()
	for _, s := range slots {
		if s.Label == label {
			return s
		}
	}
	t.Fatalf("no slot labelled %q", label)
	return domain.Slot{}
}

func TestGetAvailabilityEmptyDay(t *testing.T) {
	f := newFixture(t)

	slots, err := f.availability().Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1,
		Date:     f.date,
	})
	require.NoError(t, err)

	require.Len(t, slots, 20)
	for _, s := range slots {
		assert.True(t, s.Available, "slot %s should be available", s.Label)
		assert.Empty(t, s.Reason)
	}

	// Sorted by start time, no gaps.
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].EndTime, slots[i].StartTime)
	}
}

func TestGetAvailabilityIdempotent(t *testing.T) {
	f := newFixture(t)
	f.seedLeave(t, "PARTIAL", "13:00", "14:00")
	f.seedAppointment(t, f.at(10, 30), f.at(11, 0), "confirmed", false)

	in := domain.AvailabilityInput{BarberID: 1, Date: f.date}

	first, err := f.availability().Execute(context.Background(), in)
	require.NoError(t, err)
	second, err := f.availability().Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetAvailabilityFullDayLeave(t *testing.T) {
	f := newFixture(t)
	f.seedLeave(t, "FULL_DAY", "", "")

	slots, err := f.availability().Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1,
		Date:     f.date,
	})
	require.NoError(t, err)

	require.Len(t, slots, 20)
	for _, s := range slots {
		assert.False(t, s.Available)
		assert.Equal(t, "Barber unavailable", s.Reason)
	}
}

func TestGetAvailabilityPartialLeave(t *testing.T) {
	f := newFixture(t)
	f.seedLeave(t, "PARTIAL", "13:00", "14:00")

	slots, err := f.availability().Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1,
		Date:     f.date,
	})
	require.NoError(t, err)

	blocked := []string{"13:00 - 13:30", "13:30 - 14:00"}
	for _, label := range blocked {
		s := slotByLabel(t, slots, label)
		assert.False(t, s.Available)
		assert.Equal(t, "Barber unavailable", s.Reason)
	}

	// Touching boundaries do not overlap.
	for _, label := range []string{"12:30 - 13:00", "14:00 - 14:30"} {
		assert.True(t, slotByLabel(t, slots, label).Available)
	}
}

func TestGetAvailabilityBookedSlot(t *testing.T) {
	f := newFixture(t)
	f.seedAppointment(t, f.at(10, 30), f.at(11, 0), "confirmed", false)

	slots, err := f.availability().Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1,
		Date:     f.date,
	})
	require.NoError(t, err)

	s := slotByLabel(t, slots, "10:30 - 11:00")
	assert.False(t, s.Available)
	assert.Equal(t, "Booked", s.Reason)

	assert.True(t, slotByLabel(t, slots, "10:00 - 10:30").Available)
	assert.True(t, slotByLabel(t, slots, "11:00 - 11:30").Available)
}

func TestGetAvailabilityMultiSlotSpan(t *testing.T) {
	f := newFixture(t)
	f.seedAppointment(t, f.at(11, 0), f.at(11, 30), "confirmed", false)

	// A 90-minute booking starting at 10:00 would run into the
	// 11:00 appointment, so the 10:00 slot is not bookable for it.
	slots, err := f.availability().Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1,
		Date:     f.date,
		Duration: 90 * time.Minute,
	})
	require.NoError(t, err)

	for _, label := range []string{"10:00 - 10:30", "10:30 - 11:00", "11:00 - 11:30"} {
		s := slotByLabel(t, slots, label)
		assert.False(t, s.Available, "slot %s", label)
		assert.Equal(t, "Booked", s.Reason)
	}

	assert.True(t, slotByLabel(t, slots, "11:30 - 12:00").Available)

	// The span, not the grid slot, must fit before closing.
	for _, label := range []string{"19:00 - 19:30", "19:30 - 20:00"} {
		s := slotByLabel(t, slots, label)
		assert.False(t, s.Available, "slot %s", label)
		assert.Equal(t, "Exceeds closing time", s.Reason)
	}
	assert.True(t, slotByLabel(t, slots, "18:30 - 19:00").Available)
}

func TestGetAvailabilityPastSlots(t *testing.T) {
	f := newFixture(t)
	f.now = f.at(12, 10)

	slots, err := f.availability().Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1,
		Date:     f.date,
	})
	require.NoError(t, err)

	for _, label := range []string{"10:00 - 10:30", "11:30 - 12:00", "12:00 - 12:30"} {
		s := slotByLabel(t, slots, label)
		assert.False(t, s.Available, "slot %s", label)
		assert.Equal(t, "Time passed", s.Reason)
	}

	assert.True(t, slotByLabel(t, slots, "12:30 - 13:00").Available)
}

func TestGetAvailabilityReasonPriority(t *testing.T) {
	f := newFixture(t)
	f.now = f.at(12, 10)
	f.seedLeave(t, "PARTIAL", "10:00", "10:30")
	f.seedAppointment(t, f.at(11, 0), f.at(11, 30), "confirmed", false)

	slots, err := f.availability().Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1,
		Date:     f.date,
	})
	require.NoError(t, err)

	// Leave and booking reasons win over the past-time check.
	assert.Equal(t, "Barber unavailable", slotByLabel(t, slots, "10:00 - 10:30").Reason)
	assert.Equal(t, "Booked", slotByLabel(t, slots, "11:00 - 11:30").Reason)
	assert.Equal(t, "Time passed", slotByLabel(t, slots, "10:30 - 11:00").Reason)
}

func TestGetAvailabilityIgnoresInactiveAppointments(t *testing.T) {
	f := newFixture(t)
	f.seedAppointment(t, f.at(10, 0), f.at(10, 30), "cancelled", false)
	f.seedAppointment(t, f.at(11, 0), f.at(11, 30), "pending", false)
	f.seedAppointment(t, f.at(12, 0), f.at(12, 30), "confirmed", true) // informed

	slots, err := f.availability().Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1,
		Date:     f.date,
	})
	require.NoError(t, err)

	for _, label := range []string{"10:00 - 10:30", "11:00 - 11:30", "12:00 - 12:30"} {
		assert.True(t, slotByLabel(t, slots, label).Available, "slot %s", label)
	}
}

func TestGetAvailabilityOtherBarberDoesNotBlock(t *testing.T) {
	f := newFixture(t)

	other := models.Appointment{
		Reference:     "ref-other",
		BarberID:      2,
		StartTime:     f.at(10, 0),
		EndTime:       f.at(10, 30),
		Status:        "confirmed",
		CustomerName:  "Someone",
		CustomerPhone: "+919876500000",
	}
	require.NoError(t, f.db.Create(&other).Error)

	slots, err := f.availability().Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1,
		Date:     f.date,
	})
	require.NoError(t, err)

	assert.True(t, slotByLabel(t, slots, "10:00 - 10:30").Available)
}
