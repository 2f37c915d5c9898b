package booking

import (
	"github.com/campuscuts/booking-api/internal/httperr"
	"github.com/campuscuts/booking-api/internal/models"
)

// PermittedTransitions is the single authorization source for the
// booking lifecycle: every handler and use case derives what an actor
// may do from here instead of re-checking roles ad hoc.
//
// The barber of a booking may trigger any transition the state machine
// allows (confirm, complete, cancel, no_show). The customer of a
// booking may only cancel, and only while the booking is still active.
// Anyone else gets nothing.
func PermittedTransitions(actorID uint, role string, b *models.Booking) []Status {
	current := Status(b.Status)

	switch role {
	case models.RoleBarber:
		if b.BarberID != actorID {
			return nil
		}
		return validTransitions[current]

	case models.RoleCustomer:
		if b.CustomerID != actorID {
			return nil
		}
		if current.CanTransitionTo(StatusCancelled) {
			return []Status{StatusCancelled}
		}
	}

	return nil
}

// canTrigger rejects a transition with a reason identifying which guard
// failed: invalid_state when the state machine forbids it for anyone,
// not_allowed when the state allows it but this actor may not trigger it.
func canTrigger(actorID uint, role string, b *models.Booking, target Status) error {
	for _, t := range PermittedTransitions(actorID, role, b) {
		if t == target {
			return nil
		}
	}

	if !Status(b.Status).CanTransitionTo(target) {
		return httperr.ErrBusiness("invalid_state")
	}
	return httperr.ErrBusiness("not_allowed")
}
