package models

import "time"

// AvailabilityException overrides the recurring schedule for a single
// date. It fully replaces the weekly windows: when IsAvailable is true
// the day has exactly the StartTime-EndTime window, when false the day
// is fully blocked and both times are empty.
type AvailabilityException struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"uniqueIndex:idx_exception_barber_date" json:"barber_id"`
	Date     string `gorm:"size:10;uniqueIndex:idx_exception_barber_date" json:"date"` // YYYY-MM-DD

	IsAvailable bool   `json:"is_available"`
	StartTime   string `gorm:"size:5" json:"start_time"`
	EndTime     string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
