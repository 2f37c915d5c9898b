package models

import "time"

// Booking rows are never deleted; cancelled and no-show bookings are
// kept for history and reviews. DurationMin and Price are snapshots of
// the barber profile taken at creation time.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `json:"customer_id"`
	Customer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	BarberID uint `json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	AppointmentDate string `gorm:"size:10;not null" json:"appointment_date"` // YYYY-MM-DD
	StartTime       string `gorm:"size:5;not null" json:"start_time"`        // HH:MM
	DurationMin     int    `gorm:"not null" json:"duration_min"`

	Price float64 `json:"price"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CancelledBy        string `gorm:"size:20" json:"cancelled_by"` // customer | barber
	CancellationReason string `gorm:"size:255" json:"cancellation_reason"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
