package dto

import "time"

type BookingListDTO struct {
	ID              uint       `json:"id"`
	AppointmentDate string     `json:"appointment_date"`
	StartTime       string     `json:"start_time"`
	EndTime         string     `json:"end_time"`
	Status          string     `json:"status"`
	Price           float64    `json:"price"`
	CustomerName    string     `json:"customer_name,omitempty"`
	BarberName      string     `json:"barber_name,omitempty"`
	CancelledBy     string     `json:"cancelled_by,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
}
