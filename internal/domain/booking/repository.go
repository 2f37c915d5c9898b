package booking

import (
	"context"

	"github.com/campuscuts/booking-api/internal/models"
)

type Repository interface {
	// -------- Barber profile --------
	GetBarberProfile(
		ctx context.Context,
		barberID uint,
	) (*models.BarberProfile, error)

	// -------- Schedule --------
	ListRecurringAvailability(
		ctx context.Context,
		barberID uint,
		weekday int,
	) ([]models.RecurringAvailability, error)

	// GetExceptionForDate returns (nil, nil) when no exception exists
	// for the date.
	GetExceptionForDate(
		ctx context.Context,
		barberID uint,
		date string,
	) (*models.AvailabilityException, error)

	// -------- Booking (create / conflict) --------

	// ListActiveBookingsForDate returns the pending and confirmed
	// bookings for the barber on the date, ordered by start time.
	// Terminal bookings never block slots.
	ListActiveBookingsForDate(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Booking, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change / listing) --------
	GetBookingByID(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForBarberByDate(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Booking, error)

	ListBookingsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Booking, error)
}
