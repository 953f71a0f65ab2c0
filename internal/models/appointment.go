package models

import "time"

// Appointment is an interval reservation on a barber's day. Rows are
// never deleted; state changes go through Status and Informed only.
type Appointment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	BarberID uint `gorm:"index:idx_appointments_barber_window,priority:1" json:"barber_id"`

	StartTime time.Time `gorm:"index:idx_appointments_barber_window,priority:2" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// Sum of the booked service durations in minutes. Stored so
	// history stays meaningful if a service is later deleted.
	TotalDuration int `json:"total_duration"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	// Informed marks an appointment whose customer was contacted
	// about a schedule conflict. Informed appointments keep their
	// row but no longer block any slot.
	Informed bool `gorm:"default:false" json:"informed"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentService links an appointment to the services it was
// booked with, preserving selection order. ServiceID carries no
// foreign-key constraint: deleting a service leaves historical
// appointments intact, and lookups tolerate missing rows.
type AppointmentService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"index" json:"appointment_id"`
	ServiceID     uint `json:"service_id"`
	Position      int  `json:"position"`
}
