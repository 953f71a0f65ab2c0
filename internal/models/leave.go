package models

import "time"

// Leave records barber unavailability on one calendar day, either the
// whole day or a partial wall-clock window. Leaves are deleted and
// recreated for edits, never mutated in place.
type Leave struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"index:idx_leaves_barber_day,priority:1" json:"barber_id"`
	Date     string `gorm:"size:10;index:idx_leaves_barber_day,priority:2" json:"date"` // YYYY-MM-DD

	Type string `gorm:"size:10;default:'FULL_DAY'" json:"type"` // FULL_DAY | PARTIAL

	// Wall-clock HH:mm window, set only for PARTIAL leaves.
	StartTime string `gorm:"size:5" json:"start_time,omitempty"`
	EndTime   string `gorm:"size:5" json:"end_time,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
