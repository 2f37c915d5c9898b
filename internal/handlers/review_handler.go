package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuscuts/booking-api/internal/httperr"
	"github.com/campuscuts/booking-api/internal/middleware"
	ucReview "github.com/campuscuts/booking-api/internal/usecase/review"
)

type ReviewHandler struct {
	createUC *ucReview.CreateReview
}

func NewReviewHandler(createUC *ucReview.CreateReview) *ReviewHandler {
	return &ReviewHandler{createUC: createUC}
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid review data.")
		return
	}

	review, err := h.createUC.Execute(c.Request.Context(), ucReview.CreateReviewInput{
		CustomerID: customerID,
		BookingID:  uint(bookingID),
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.IsBusiness(err, "not_allowed"):
			httperr.Forbidden(c, "not_allowed", "You may only review your own bookings.")
		case httperr.IsBusiness(err, "booking_not_completed"):
			httperr.BadRequest(c, "booking_not_completed", "Only completed bookings can be reviewed.")
		case httperr.IsBusiness(err, "already_reviewed"):
			httperr.Conflict(c, "already_reviewed", "This booking already has a review.")
		case httperr.IsBusiness(err, "invalid_rating"):
			httperr.BadRequest(c, "invalid_rating", "Rating must be between 1 and 5.")
		default:
			httperr.Internal(c, "failed_to_create_review", "Could not save the review.")
		}
		return
	}

	c.JSON(http.StatusCreated, review)
}
