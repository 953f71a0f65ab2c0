package booking_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/sharpcuts/barber-booking/internal/domain/booking"
	"github.com/sharpcuts/barber-booking/internal/httperr"
	"github.com/sharpcuts/barber-booking/internal/models"
	ucbooking "github.com/sharpcuts/barber-booking/internal/usecase/booking"
)

func (f *fixture) book() *ucbooking.Book {
	return ucbooking.NewBook(f.repo, f.leaves, f.grid, f.audit)
}

func validBookInput(f *fixture, serviceIDs []uint, start time.Time) ucbooking.BookInput {
	return ucbooking.BookInput{
		BarberID:      1,
		ServiceIDs:    serviceIDs,
		StartTime:     start,
		CustomerName:  "Anil Kumar",
		CustomerPhone: "+91 98765 43210",
	}
}

func TestBookSuccess(t *testing.T) {
	f := newFixture(t)
	cut := f.seedService(t, "Hair Cut", 30, 80)
	trim := f.seedService(t, "Beard Trim", 20, 40)

	ap, err := f.book().Execute(context.Background(),
		validBookInput(f, []uint{cut.ID, trim.ID}, f.at(10, 0)))
	require.NoError(t, err)

	assert.Equal(t, "confirmed", ap.Status)
	assert.False(t, ap.Informed)
	assert.NotEmpty(t, ap.Reference)
	assert.Equal(t, 50, ap.TotalDuration)
	assert.Equal(t, "+919876543210", ap.CustomerPhone)

	// 50 minutes from 10:00 rounds up to the 11:00 grid boundary.
	assert.Equal(t, f.at(10, 0), ap.StartTime)
	assert.Equal(t, f.at(11, 0), ap.EndTime)

	// Service links keep selection order.
	var links []models.AppointmentService
	require.NoError(t, f.db.Where("appointment_id = ?", ap.ID).Order("position ASC").Find(&links).Error)
	require.Len(t, links, 2)
	assert.Equal(t, cut.ID, links[0].ServiceID)
	assert.Equal(t, trim.ID, links[1].ServiceID)
}

func TestBookAlignedEndIsNotRounded(t *testing.T) {
	f := newFixture(t)
	cut := f.seedService(t, "Hair Cut", 30, 80)

	ap, err := f.book().Execute(context.Background(),
		validBookInput(f, []uint{cut.ID}, f.at(15, 30)))
	require.NoError(t, err)

	assert.Equal(t, f.at(16, 0), ap.EndTime)
}

func TestBookValidation(t *testing.T) {
	f := newFixture(t)
	cut := f.seedService(t, "Hair Cut", 30, 80)

	inactive := models.Service{Name: "Retired", Duration: 30, Price: 10, Active: false}
	require.NoError(t, f.db.Create(&inactive).Error)

	cases := []struct {
		name string
		in   ucbooking.BookInput
		code string
	}{
		{
			name: "empty service list",
			in:   validBookInput(f, nil, f.at(10, 0)),
			code: "empty_services",
		},
		{
			name: "unknown service id",
			in:   validBookInput(f, []uint{cut.ID, 9999}, f.at(10, 0)),
			code: "unknown_service",
		},
		{
			name: "inactive service",
			in:   validBookInput(f, []uint{inactive.ID}, f.at(10, 0)),
			code: "inactive_service",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.book().Execute(context.Background(), tc.in)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tc.code), "want %s, got %v", tc.code, err)
			assert.True(t, httperr.IsKind(err, httperr.KindValidation))
		})
	}

	t.Run("invalid phone", func(t *testing.T) {
		in := validBookInput(f, []uint{cut.ID}, f.at(10, 0))
		in.CustomerPhone = "not-a-phone"
		_, err := f.book().Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, "invalid_phone"))
	})

	// No partial state leaked from any rejected request.
	var count int64
	require.NoError(t, f.db.Model(&models.Appointment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBookBlockedByLeave(t *testing.T) {
	f := newFixture(t)
	cut := f.seedService(t, "Hair Cut", 30, 80)
	f.seedLeave(t, "FULL_DAY", "", "")

	_, err := f.book().Execute(context.Background(),
		validBookInput(f, []uint{cut.ID}, f.at(10, 0)))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "barber_unavailable"))
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
}

func TestBookBlockedByPartialLeave(t *testing.T) {
	f := newFixture(t)
	long := f.seedService(t, "Premium Grooming", 90, 200)
	f.seedLeave(t, "PARTIAL", "14:00", "15:00")

	// 13:00 + 90 min spans into the leave window.
	_, err := f.book().Execute(context.Background(),
		validBookInput(f, []uint{long.ID}, f.at(13, 0)))
	assert.True(t, httperr.IsBusiness(err, "barber_unavailable"))

	// Ending exactly at the window start is fine.
	_, err = f.book().Execute(context.Background(),
		validBookInput(f, []uint{long.ID}, f.at(12, 30)))
	assert.NoError(t, err)
}

func TestBookConflictWithExistingAppointment(t *testing.T) {
	f := newFixture(t)
	long := f.seedService(t, "Premium Grooming", 90, 200)
	f.seedAppointment(t, f.at(10, 30), f.at(11, 0), "confirmed", false)

	_, err := f.book().Execute(context.Background(),
		validBookInput(f, []uint{long.ID}, f.at(10, 0)))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_already_booked"))
	assert.EqualError(t, err, "slot_already_booked")
}

func TestBookIgnoresInformedAndInactiveAppointments(t *testing.T) {
	f := newFixture(t)
	cut := f.seedService(t, "Hair Cut", 30, 80)
	f.seedAppointment(t, f.at(10, 0), f.at(10, 30), "confirmed", true)
	f.seedAppointment(t, f.at(10, 0), f.at(10, 30), "cancelled", false)

	_, err := f.book().Execute(context.Background(),
		validBookInput(f, []uint{cut.ID}, f.at(10, 0)))
	assert.NoError(t, err)
}

func TestBookThenAvailabilityRoundTrip(t *testing.T) {
	f := newFixture(t)
	cut := f.seedService(t, "Hair Cut", 30, 80)

	_, err := f.book().Execute(context.Background(),
		validBookInput(f, []uint{cut.ID}, f.at(10, 0)))
	require.NoError(t, err)

	slots, err := f.availability().Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1,
		Date:     f.date,
	})
	require.NoError(t, err)

	s := slotByLabel(t, slots, "10:00 - 10:30")
	assert.False(t, s.Available)
	assert.Equal(t, "Booked", s.Reason)
}

func TestBookConcurrentOverlapExactlyOneWins(t *testing.T) {
	f := newFixture(t)
	cut := f.seedService(t, "Hair Cut", 30, 80)
	uc := f.book()

	const attempts = 2
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(),
				validBookInput(f, []uint{cut.ID}, f.at(10, 0)))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, httperr.IsBusiness(err, "slot_already_booked"), "unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)

	var count int64
	require.NoError(t, f.db.Model(&models.Appointment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
