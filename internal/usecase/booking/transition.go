package booking

import (
	"context"
	"time"

	"github.com/campuscuts/booking-api/internal/audit"
	"github.com/campuscuts/booking-api/internal/cache"
	domain "github.com/campuscuts/booking-api/internal/domain/booking"
	"github.com/campuscuts/booking-api/internal/httperr"
	"github.com/campuscuts/booking-api/internal/models"
	"github.com/campuscuts/booking-api/internal/timezone"
)

// Actor identifies who is attempting a lifecycle transition.
type Actor struct {
	ID   uint
	Role string
}

// TransitionBooking runs every lifecycle change (confirm, complete,
// cancel, no-show) through the same fetch → guard → mutate → save →
// audit pipeline. The guard lives in the domain package; a rejection
// leaves the row untouched.
type TransitionBooking struct {
	repo  domain.Repository
	slots *cache.SlotCache
	audit *audit.Dispatcher
}

func NewTransitionBooking(
	repo domain.Repository,
	slots *cache.SlotCache,
	audit *audit.Dispatcher,
) *TransitionBooking {
	return &TransitionBooking{
		repo:  repo,
		slots: slots,
		audit: audit,
	}
}

func (uc *TransitionBooking) Confirm(
	ctx context.Context,
	actor Actor,
	bookingID uint,
) (*models.Booking, error) {

	return uc.apply(ctx, actor, bookingID, "booking_confirmed",
		func(b *models.Booking, now time.Time) error {
			return domain.Confirm(b, actor.ID, actor.Role, now)
		})
}

func (uc *TransitionBooking) Complete(
	ctx context.Context,
	actor Actor,
	bookingID uint,
) (*models.Booking, error) {

	return uc.apply(ctx, actor, bookingID, "booking_completed",
		func(b *models.Booking, now time.Time) error {
			return domain.Complete(b, actor.ID, actor.Role, now)
		})
}

func (uc *TransitionBooking) Cancel(
	ctx context.Context,
	actor Actor,
	bookingID uint,
	reason string,
) (*models.Booking, error) {

	return uc.apply(ctx, actor, bookingID, "booking_cancelled",
		func(b *models.Booking, now time.Time) error {
			return domain.Cancel(b, actor.ID, actor.Role, reason, now)
		})
}

func (uc *TransitionBooking) MarkNoShow(
	ctx context.Context,
	actor Actor,
	bookingID uint,
) (*models.Booking, error) {

	return uc.apply(ctx, actor, bookingID, "booking_no_show",
		func(b *models.Booking, now time.Time) error {
			return domain.MarkNoShow(b, actor.ID, actor.Role, now)
		})
}

func (uc *TransitionBooking) apply(
	ctx context.Context,
	actor Actor,
	bookingID uint,
	action string,
	mutate func(*models.Booking, time.Time) error,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := mutate(b, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.slots.Invalidate(ctx, b.BarberID, b.AppointmentDate)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ID,
		Action:   action,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
