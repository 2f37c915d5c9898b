package booking

import (
	"context"
	"time"

	"github.com/campuscuts/booking-api/internal/audit"
	"github.com/campuscuts/booking-api/internal/cache"
	domain "github.com/campuscuts/booking-api/internal/domain/booking"
	"github.com/campuscuts/booking-api/internal/domain/schedule"
	"github.com/campuscuts/booking-api/internal/httperr"
	"github.com/campuscuts/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerID uint
	BarberID   uint

	Date string // YYYY-MM-DD, pre-validated
	Time string // HH:MM, pre-validated
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	slots *cache.SlotCache
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	slots *cache.SlotCache,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		slots: slots,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute creates a pending booking for the requested slot. The
// read-side checks (window membership, overlap against active bookings)
// are the fast user-facing filter; the real guarantee against a
// concurrent identical request is the partial unique index on active
// (barber, date, time) rows, whose violation is mapped to the same
// time_conflict rejection.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	profile, err := uc.repo.GetBarberProfile(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	exception, err := uc.repo.GetExceptionForDate(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	var windows []schedule.Window
	if exception != nil {
		windows, _ = schedule.ResolveWindows(nil, exception)
	} else {
		day, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}

		rows, err := uc.repo.ListRecurringAvailability(ctx, in.BarberID, int(day.Weekday()))
		if err != nil {
			return nil, err
		}
		windows, _ = schedule.ResolveWindows(rows, nil)
	}

	if !slotWithinWindows(in.Time, profile.DurationMin, windows) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	existing, err := uc.repo.ListActiveBookingsForDate(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	occupied := make([]schedule.Interval, 0, len(existing))
	for _, b := range existing {
		occupied = append(occupied, schedule.Interval{
			Start:       b.StartTime,
			DurationMin: b.DurationMin,
		})
	}

	if !schedule.IsSlotFree(in.Time, profile.DurationMin, occupied) {
		return nil, httperr.ErrBusiness("time_conflict")
	}

	b := &models.Booking{
		CustomerID:      in.CustomerID,
		BarberID:        in.BarberID,
		AppointmentDate: in.Date,
		StartTime:       in.Time,
		DurationMin:     profile.DurationMin,
		Price:           profile.Price,
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsUniqueViolation(err) {
			// lost the race: another request took the slot between
			// the check and the insert
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	uc.slots.Invalidate(ctx, in.BarberID, in.Date)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.CustomerID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

// slotWithinWindows reports whether the whole requested slot fits
// inside one open window.
func slotWithinWindows(start string, durationMin int, windows []schedule.Window) bool {
	startMin := schedule.TimeToMinutes(start)
	endMin := startMin + durationMin

	for _, w := range windows {
		if startMin >= schedule.TimeToMinutes(w.Start) && endMin <= schedule.TimeToMinutes(w.End) {
			return true
		}
	}
	return false
}
