package review

import (
	"context"

	"gorm.io/gorm"

	"github.com/campuscuts/booking-api/internal/audit"
	domain "github.com/campuscuts/booking-api/internal/domain/booking"
	"github.com/campuscuts/booking-api/internal/httperr"
	"github.com/campuscuts/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReviewInput struct {
	CustomerID uint
	BookingID  uint
	Rating     int
	Comment    string
}

// ======================================================
// USE CASE
// ======================================================

// CreateReview inserts the review and recomputes the barber's average
// rating and review count in the same transaction, so the denormalized
// profile fields can never drift from the review rows.
type CreateReview struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCreateReview(db *gorm.DB, audit *audit.Dispatcher) *CreateReview {
	return &CreateReview{
		db:    db,
		audit: audit,
	}
}

func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrBusiness("invalid_rating")
	}

	var booking models.Booking
	if err := uc.db.WithContext(ctx).
		First(&booking, in.BookingID).Error; err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if booking.CustomerID != in.CustomerID {
		return nil, httperr.ErrBusiness("not_allowed")
	}

	if booking.Status != string(domain.StatusCompleted) {
		return nil, httperr.ErrBusiness("booking_not_completed")
	}

	review := models.Review{
		BookingID:  in.BookingID,
		CustomerID: in.CustomerID,
		BarberID:   booking.BarberID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}

	err := uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		var agg struct {
			Avg   float64
			Count int64
		}
		if err := tx.Model(&models.Review{}).
			Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
			Where("barber_id = ?", booking.BarberID).
			Scan(&agg).Error; err != nil {
			return err
		}

		return tx.Model(&models.BarberProfile{}).
			Where("user_id = ?", booking.BarberID).
			Updates(map[string]any{
				"avg_rating":   agg.Avg,
				"rating_count": agg.Count,
			}).Error
	})

	if err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("already_reviewed")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.CustomerID,
		Action:   "review_created",
		Entity:   "review",
		EntityID: &review.ID,
	})

	return &review, nil
}
