package booking

import (
	"time"

	"github.com/campuscuts/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================
//
// Each action validates the transition for the acting party and, only
// then, mutates the model and stamps its lifecycle timestamp. On a
// rejected transition the record is left untouched.

func Confirm(b *models.Booking, actorID uint, role string, now time.Time) error {
	if err := canTrigger(actorID, role, b, StatusConfirmed); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	b.ConfirmedAt = &now
	return nil
}

func Complete(b *models.Booking, actorID uint, role string, now time.Time) error {
	if err := canTrigger(actorID, role, b, StatusCompleted); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

func Cancel(b *models.Booking, actorID uint, role string, reason string, now time.Time) error {
	if err := canTrigger(actorID, role, b, StatusCancelled); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledBy = role
	b.CancellationReason = reason
	b.CancelledAt = &now
	return nil
}

func MarkNoShow(b *models.Booking, actorID uint, role string, now time.Time) error {
	if err := canTrigger(actorID, role, b, StatusNoShow); err != nil {
		return err
	}

	b.Status = string(StatusNoShow)
	return nil
}
