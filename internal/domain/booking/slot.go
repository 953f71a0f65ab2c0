package booking

import "time"

// Unavailability reasons, surfaced verbatim to clients.
const (
	ReasonOnLeave     = "Barber unavailable"
	ReasonBooked      = "Booked"
	ReasonPastClosing = "Exceeds closing time"
	ReasonTimePassed  = "Time passed"
)

// Slot is a derived, never-persisted availability verdict for one
// grid slot. The full candidate list is always returned, unavailable
// slots included, so clients can render disabled slots with an
// explanation.
type Slot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Label     string    `json:"label"`
	Available bool      `json:"available"`
	Reason    string    `json:"reason,omitempty"`
}

type AvailabilityInput struct {
	BarberID uint
	Date     time.Time // local calendar day
	Duration time.Duration
}
