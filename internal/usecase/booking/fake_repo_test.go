package booking

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/campuscuts/booking-api/internal/domain/booking"
	"github.com/campuscuts/booking-api/internal/models"
)

// fakeRepo is an in-memory domain.Repository. Its CreateBooking
// enforces the same partial uniqueness rule as the database index, so
// tests can replay the check-then-write race. With staleReads set the
// read side keeps answering from the snapshot taken before any insert,
// exactly what two concurrent requests would each observe.
type fakeRepo struct {
	profile    *models.BarberProfile
	recurring  map[int][]models.RecurringAvailability
	exceptions map[string]*models.AvailabilityException
	bookings   []models.Booking

	staleReads bool
	snapshot   []models.Booking

	nextID uint
}

func newFakeRepo(profile *models.BarberProfile) *fakeRepo {
	return &fakeRepo{
		profile:    profile,
		recurring:  map[int][]models.RecurringAvailability{},
		exceptions: map[string]*models.AvailabilityException{},
		nextID:     1,
	}
}

func (f *fakeRepo) GetBarberProfile(ctx context.Context, barberID uint) (*models.BarberProfile, error) {
	if f.profile == nil || f.profile.UserID != barberID {
		return nil, gorm.ErrRecordNotFound
	}
	return f.profile, nil
}

func (f *fakeRepo) ListRecurringAvailability(ctx context.Context, barberID uint, weekday int) ([]models.RecurringAvailability, error) {
	return f.recurring[weekday], nil
}

func (f *fakeRepo) GetExceptionForDate(ctx context.Context, barberID uint, date string) (*models.AvailabilityException, error) {
	return f.exceptions[date], nil
}

func (f *fakeRepo) ListActiveBookingsForDate(ctx context.Context, barberID uint, date string) ([]models.Booking, error) {
	source := f.bookings
	if f.staleReads {
		source = f.snapshot
	}

	var active []models.Booking
	for _, b := range source {
		if b.BarberID == barberID && b.AppointmentDate == date && domain.Status(b.Status).IsActive() {
			active = append(active, b)
		}
	}
	return active, nil
}

func (f *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	for _, existing := range f.bookings {
		if existing.BarberID == b.BarberID &&
			existing.AppointmentDate == b.AppointmentDate &&
			existing.StartTime == b.StartTime &&
			domain.Status(existing.Status).IsActive() {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_bookings_active_slot"}
		}
	}

	b.ID = f.nextID
	f.nextID++
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeRepo) GetBookingByID(ctx context.Context, bookingID uint) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	for i := range f.bookings {
		if f.bookings[i].ID == b.ID {
			f.bookings[i] = *b
			return nil
		}
	}
	return errors.New("record not found")
}

func (f *fakeRepo) ListBookingsForBarberByDate(ctx context.Context, barberID uint, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.BarberID == barberID && b.AppointmentDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsForCustomer(ctx context.Context, customerID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
