package booking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpcuts/barber-booking/internal/httperr"
	ucbooking "github.com/sharpcuts/barber-booking/internal/usecase/booking"
)

func TestUpdateStatusTransitions(t *testing.T) {
	f := newFixture(t)
	uc := ucbooking.NewUpdateStatus(f.repo, f.audit)

	ap := f.seedAppointment(t, f.at(10, 0), f.at(10, 30), "confirmed", false)

	updated, err := uc.Execute(context.Background(), 1, ap.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)

	// Terminal appointments cannot change state again.
	_, err = uc.Execute(context.Background(), 1, ap.ID, "confirmed")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)
	uc := ucbooking.NewUpdateStatus(f.repo, f.audit)

	ap := f.seedAppointment(t, f.at(10, 0), f.at(10, 30), "confirmed", false)

	_, err := uc.Execute(context.Background(), 1, ap.ID, "done")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}

func TestUpdateStatusNotFound(t *testing.T) {
	f := newFixture(t)
	uc := ucbooking.NewUpdateStatus(f.repo, f.audit)

	_, err := uc.Execute(context.Background(), 1, 4242, "cancelled")
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestMarkInformedHidesAppointmentFromAvailability(t *testing.T) {
	f := newFixture(t)
	uc := ucbooking.NewMarkInformed(f.repo, f.audit)

	ap := f.seedAppointment(t, f.at(10, 0), f.at(10, 30), "confirmed", false)

	updated, err := uc.Execute(context.Background(), 1, ap.ID)
	require.NoError(t, err)
	assert.True(t, updated.Informed)

	// Marking twice is harmless.
	again, err := uc.Execute(context.Background(), 1, ap.ID)
	require.NoError(t, err)
	assert.True(t, again.Informed)

	// The informed appointment no longer blocks its slot but is
	// still on record.
	blocking, err := f.repo.ListBlocking(context.Background(), 1, f.at(10, 0), f.at(20, 0))
	require.NoError(t, err)
	assert.Empty(t, blocking)

	kept, err := f.repo.GetByID(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", kept.Status)
}

func TestMarkInformedNotFound(t *testing.T) {
	f := newFixture(t)
	uc := ucbooking.NewMarkInformed(f.repo, f.audit)

	_, err := uc.Execute(context.Background(), 1, 4242)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
