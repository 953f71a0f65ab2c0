package booking

import "github.com/sharpcuts/barber-booking/internal/httperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// InitialStatus is the status of a freshly booked appointment.
// Bookings are auto-confirmed; "pending" is only reachable through an
// explicit status update by the barber.
func InitialStatus() Status {
	return StatusConfirmed
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status ends an appointment's
// lifecycle. Terminal appointments stay in history but cannot change
// state again.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition validates a status change request.
func CanTransition(from, to Status) error {
	if !to.IsValid() {
		return httperr.ErrValidation("invalid_status", "Unknown appointment status.")
	}
	if from.IsTerminal() {
		return httperr.ErrConflict("invalid_state", "Appointment can no longer change status.")
	}
	return nil
}
