package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campuscuts/booking-api/internal/cache"
	"github.com/campuscuts/booking-api/internal/domain/schedule"
	"github.com/campuscuts/booking-api/internal/httperr"
	"github.com/campuscuts/booking-api/internal/middleware"
	"github.com/campuscuts/booking-api/internal/models"
	"github.com/campuscuts/booking-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	db    *gorm.DB
	slots *cache.SlotCache
}

func NewAvailabilityHandler(db *gorm.DB, slots *cache.SlotCache) *AvailabilityHandler {
	return &AvailabilityHandler{
		db:    db,
		slots: slots,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateRecurringRequest struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type UpsertExceptionRequest struct {
	Date        string `json:"date" binding:"required"`
	IsAvailable bool   `json:"is_available"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// ======================================================
// RECURRING SCHEDULE
// ======================================================

func (h *AvailabilityHandler) ListRecurring(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var rows []models.RecurringAvailability
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC, start_time ASC").
		Find(&rows).Error; err != nil {

		httperr.Internal(c, "failed_to_list_availability", "Could not load weekly schedule.")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// CreateRecurring adds one weekly window. Windows for the same weekday
// must not overlap; rejecting overlap at write time keeps the slot
// expansion free of duplicate start times.
func (h *AvailabilityHandler) CreateRecurring(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid schedule data.")
		return
	}

	if !validators.IsValidTime(req.StartTime) || !validators.IsValidTime(req.EndTime) {
		httperr.BadRequest(c, "invalid_time", "Times must be 24-hour HH:MM.")
		return
	}

	if schedule.TimeToMinutes(req.StartTime) >= schedule.TimeToMinutes(req.EndTime) {
		httperr.BadRequest(c, "invalid_window", "Start time must be before end time.")
		return
	}

	var existing []models.RecurringAvailability
	if err := h.db.
		Where("barber_id = ? AND weekday = ?", barberID, req.Weekday).
		Find(&existing).Error; err != nil {

		httperr.Internal(c, "failed_to_check_availability", "Could not validate schedule.")
		return
	}

	candidate := schedule.Window{Start: req.StartTime, End: req.EndTime}
	for _, row := range existing {
		if schedule.WindowsOverlap(candidate, schedule.Window{Start: row.StartTime, End: row.EndTime}) {
			httperr.Conflict(c, "overlapping_hours", "The window overlaps an existing one for this weekday.")
			return
		}
	}

	row := models.RecurringAvailability{
		BarberID:  barberID,
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := h.db.Create(&row).Error; err != nil {
		httperr.Internal(c, "failed_to_save_availability", "Could not save schedule.")
		return
	}

	h.slots.InvalidateBarber(c.Request.Context(), barberID)

	c.JSON(http.StatusCreated, row)
}

func (h *AvailabilityHandler) DeleteRecurring(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND barber_id = ?", id, barberID).
		Delete(&models.RecurringAvailability{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_availability", "Could not delete schedule entry.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "availability_not_found", "Schedule entry not found.")
		return
	}

	h.slots.InvalidateBarber(c.Request.Context(), barberID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// DATE EXCEPTIONS
// ======================================================

func (h *AvailabilityHandler) ListExceptions(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var rows []models.AvailabilityException
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("date ASC").
		Find(&rows).Error; err != nil {

		httperr.Internal(c, "failed_to_list_exceptions", "Could not load exceptions.")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// UpsertException creates or replaces the single exception for a date.
// An available exception needs a full window; a blocked day must carry
// no times at all.
func (h *AvailabilityHandler) UpsertException(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpsertExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid exception data.")
		return
	}

	if !validators.IsValidDate(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	if req.IsAvailable {
		if !validators.IsValidTime(req.StartTime) || !validators.IsValidTime(req.EndTime) {
			httperr.BadRequest(c, "invalid_time", "An available exception needs HH:MM start and end times.")
			return
		}
		if schedule.TimeToMinutes(req.StartTime) >= schedule.TimeToMinutes(req.EndTime) {
			httperr.BadRequest(c, "invalid_window", "Start time must be before end time.")
			return
		}
	} else if req.StartTime != "" || req.EndTime != "" {
		httperr.BadRequest(c, "invalid_window", "A blocked day must not carry times.")
		return
	}

	var exc models.AvailabilityException
	err := h.db.
		Where("barber_id = ? AND date = ?", barberID, req.Date).
		First(&exc).Error

	if err != nil {
		exc = models.AvailabilityException{
			BarberID: barberID,
			Date:     req.Date,
		}
	}

	exc.IsAvailable = req.IsAvailable
	exc.StartTime = req.StartTime
	exc.EndTime = req.EndTime

	if err := h.db.Save(&exc).Error; err != nil {
		httperr.Internal(c, "failed_to_save_exception", "Could not save exception.")
		return
	}

	h.slots.Invalidate(c.Request.Context(), barberID, req.Date)

	c.JSON(http.StatusOK, exc)
}

func (h *AvailabilityHandler) DeleteException(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var exc models.AvailabilityException
	if err := h.db.
		Where("id = ? AND barber_id = ?", id, barberID).
		First(&exc).Error; err != nil {

		httperr.NotFound(c, "exception_not_found", "Exception not found.")
		return
	}

	if err := h.db.Delete(&exc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_exception", "Could not delete exception.")
		return
	}

	h.slots.Invalidate(c.Request.Context(), barberID, exc.Date)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
