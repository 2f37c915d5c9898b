package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuscuts/booking-api/internal/httperr"
	"github.com/campuscuts/booking-api/internal/httpresp"
	"github.com/campuscuts/booking-api/internal/middleware"
	"github.com/campuscuts/booking-api/internal/models"
	ucBooking "github.com/campuscuts/booking-api/internal/usecase/booking"
	"github.com/campuscuts/booking-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC     *ucBooking.CreateBooking
	transitionUC *ucBooking.TransitionBooking
	listUC       *ucBooking.ListBookings
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	transitionUC *ucBooking.TransitionBooking,
	listUC *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC:     createUC,
		transitionUC: transitionUC,
		listUC:       listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarberID uint   `json:"barber_id" binding:"required"`
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
	Time     string `json:"time" binding:"required"` // HH:MM
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	if !validators.IsValidDate(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}
	if !validators.IsValidTime(req.Time) {
		httperr.BadRequest(c, "invalid_time", "Time must be 24-hour HH:MM.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerID: customerID,
		BarberID:   req.BarberID,
		Date:       req.Date,
		Time:       req.Time,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// LIST
// ======================================================

// List serves both sides: a barber gets one day of their calendar, a
// customer gets their booking history.
func (h *BookingHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role == models.RoleBarber {
		dateStr := c.Query("date")
		if !validators.IsValidDate(dateStr) {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}

		rows, err := h.listUC.ForBarberByDate(c.Request.Context(), userID, dateStr)
		if err != nil {
			httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
			return
		}
		httpresp.List(c, rows)
		return
	}

	rows, err := h.listUC.ForCustomer(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
		return
	}
	httpresp.List(c, rows)
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	actor, bookingID, ok := h.actorAndID(c)
	if !ok {
		return
	}

	b, err := h.transitionUC.Confirm(c.Request.Context(), actor, bookingID)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	actor, bookingID, ok := h.actorAndID(c)
	if !ok {
		return
	}

	b, err := h.transitionUC.Complete(c.Request.Context(), actor, bookingID)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, bookingID, ok := h.actorAndID(c)
	if !ok {
		return
	}

	var req CancelBookingRequest
	_ = c.ShouldBindJSON(&req) // reason is optional, an empty body is fine

	b, err := h.transitionUC.Cancel(c.Request.Context(), actor, bookingID, req.Reason)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) MarkNoShow(c *gin.Context) {
	actor, bookingID, ok := h.actorAndID(c)
	if !ok {
		return
	}

	b, err := h.transitionUC.MarkNoShow(c.Request.Context(), actor, bookingID)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// ======================================================
// HELPERS
// ======================================================

func (h *BookingHandler) actorAndID(c *gin.Context) (ucBooking.Actor, uint, bool) {
	actor := ucBooking.Actor{
		ID:   c.MustGet(middleware.ContextUserID).(uint),
		Role: c.MustGet(middleware.ContextUserRole).(string),
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return actor, 0, false
	}

	return actor, uint(id), true
}

func mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "barber_not_found"):
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
	case httperr.IsBusiness(err, "outside_working_hours"):
		httperr.BadRequest(c, "outside_working_hours", "The requested time is outside the barber's hours.")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "This time is no longer available.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "The booking cannot change to that status.")
	case httperr.IsBusiness(err, "not_allowed"):
		httperr.Forbidden(c, "not_allowed", "You may not perform this action on the booking.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
	default:
		httperr.Internal(c, "booking_failed", "Could not process the booking.")
	}
}
