package models

import "time"

// RecurringAvailability is one standing weekly window of a barber's
// schedule. Rows are created and deleted, never updated in place.
// Rows for the same weekday must not overlap (enforced at write time).
type RecurringAvailability struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `gorm:"index:idx_recurring_barber_weekday" json:"barber_id"`
	Weekday  int  `gorm:"index:idx_recurring_barber_weekday" json:"weekday"` // 0=Sunday .. 6=Saturday

	StartTime string `gorm:"size:5;not null" json:"start_time"` // HH:MM
	EndTime   string `gorm:"size:5;not null" json:"end_time"`   // HH:MM

	CreatedAt time.Time `json:"created_at"`
}
