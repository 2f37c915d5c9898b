package booking

import (
	"context"

	domain "github.com/campuscuts/booking-api/internal/domain/booking"
	"github.com/campuscuts/booking-api/internal/domain/schedule"
	"github.com/campuscuts/booking-api/internal/dto"
	"github.com/campuscuts/booking-api/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// ForBarberByDate lists a barber's day, every status included, ordered
// by start time.
func (uc *ListBookings) ForBarberByDate(
	ctx context.Context,
	barberID uint,
	date string,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsForBarberByDate(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		row := toListDTO(b)
		row.CustomerName = b.Customer.Name
		out = append(out, row)
	}
	return out, nil
}

// ForCustomer lists a customer's booking history, newest first.
func (uc *ListBookings) ForCustomer(
	ctx context.Context,
	customerID uint,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		row := toListDTO(b)
		row.BarberName = b.Barber.Name
		out = append(out, row)
	}
	return out, nil
}

func toListDTO(b models.Booking) dto.BookingListDTO {
	return dto.BookingListDTO{
		ID:              b.ID,
		AppointmentDate: b.AppointmentDate,
		StartTime:       b.StartTime,
		EndTime:         schedule.CalculateEndTime(b.StartTime, b.DurationMin),
		Status:          b.Status,
		Price:           b.Price,
		CancelledBy:     b.CancelledBy,
		CancelledAt:     b.CancelledAt,
	}
}
