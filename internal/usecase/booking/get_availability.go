package booking

import (
	"context"
	"time"

	"github.com/campuscuts/booking-api/internal/cache"
	domain "github.com/campuscuts/booking-api/internal/domain/booking"
	"github.com/campuscuts/booking-api/internal/domain/schedule"
	"github.com/campuscuts/booking-api/internal/httperr"
)

// AvailabilityResult is the outward shape of a slot query. An empty
// day is a normal result carrying the reason, never an error.
type AvailabilityResult struct {
	Slots  []string `json:"slots"`
	Reason string   `json:"reason,omitempty"`
}

type GetAvailability struct {
	repo  domain.Repository
	slots *cache.SlotCache
}

func NewGetAvailability(repo domain.Repository, slots *cache.SlotCache) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		slots: slots,
	}
}

// Execute computes the bookable slots for (barber, date). Date must be
// a pre-validated YYYY-MM-DD string.
//
// Pipeline: resolve open windows (exception over recurring), expand
// each window into fixed-duration slots, then drop slots overlapping an
// active booking.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) (*AvailabilityResult, error) {

	var cached AvailabilityResult
	if uc.slots.Get(ctx, barberID, date, &cached) {
		return &cached, nil
	}

	profile, err := uc.repo.GetBarberProfile(ctx, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	exception, err := uc.repo.GetExceptionForDate(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	var windows []schedule.Window
	var reason string

	if exception != nil {
		windows, reason = schedule.ResolveWindows(nil, exception)
	} else {
		day, _ := time.Parse("2006-01-02", date)
		weekday := int(day.Weekday())

		rows, err := uc.repo.ListRecurringAvailability(ctx, barberID, weekday)
		if err != nil {
			return nil, err
		}
		windows, reason = schedule.ResolveWindows(rows, nil)
	}

	if len(windows) == 0 {
		result := &AvailabilityResult{Slots: []string{}, Reason: reason}
		uc.slots.Set(ctx, barberID, date, result)
		return result, nil
	}

	candidates := schedule.ExpandWindows(windows, profile.DurationMin)

	bookings, err := uc.repo.ListActiveBookingsForDate(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	occupied := make([]schedule.Interval, 0, len(bookings))
	for _, b := range bookings {
		occupied = append(occupied, schedule.Interval{
			Start:       b.StartTime,
			DurationMin: b.DurationMin,
		})
	}

	result := &AvailabilityResult{
		Slots: schedule.FilterConflicts(candidates, profile.DurationMin, occupied),
	}

	uc.slots.Set(ctx, barberID, date, result)
	return result, nil
}
