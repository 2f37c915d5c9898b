package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campuscuts/booking-api/internal/httperr"
	"github.com/campuscuts/booking-api/internal/httpresp"
	"github.com/campuscuts/booking-api/internal/models"
	ucBooking "github.com/campuscuts/booking-api/internal/usecase/booking"
	"github.com/campuscuts/booking-api/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucBooking.GetAvailability
}

func NewPublicHandler(db *gorm.DB, availabilityUC *ucBooking.GetAvailability) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
	}
}

////////////////////////////////////////////////////////
// BARBER CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	campus := strings.TrimSpace(strings.ToLower(c.Query("campus")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Model(&models.BarberProfile{}).
		Preload("User").
		Where("active = true")

	if campus != "" {
		q = q.Where("LOWER(campus) = ?", campus)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(bio) LIKE ? OR LOWER(campus) LIKE ?", like, like)
	}

	var profiles []models.BarberProfile
	if err := q.Order("avg_rating DESC, rating_count DESC").Find(&profiles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not load barbers.")
		return
	}

	httpresp.List(c, profiles)
}

func (h *PublicHandler) GetBarber(c *gin.Context) {
	barberID, ok := h.barberIDParam(c)
	if !ok {
		return
	}

	var profile models.BarberProfile
	if err := h.db.
		Preload("User").
		Where("user_id = ?", barberID).
		First(&profile).Error; err != nil {

		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	c.JSON(http.StatusOK, profile)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	barberID, ok := h.barberIDParam(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if !validators.IsValidDate(dateStr) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	result, err := h.availabilityUC.Execute(c.Request.Context(), barberID, dateStr)
	if err != nil {
		if httperr.IsBusiness(err, "barber_not_found") {
			httperr.NotFound(c, "barber_not_found", "Barber not found.")
			return
		}

		httperr.Internal(c, "availability_failed", "Could not compute available slots.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":   dateStr,
		"slots":  result.Slots,
		"reason": result.Reason,
	})
}

////////////////////////////////////////////////////////
// REVIEWS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListReviews(c *gin.Context) {
	barberID, ok := h.barberIDParam(c)
	if !ok {
		return
	}

	var reviews []models.Review
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {

		httperr.Internal(c, "failed_to_list_reviews", "Could not load reviews.")
		return
	}

	httpresp.List(c, reviews)
}

////////////////////////////////////////////////////////
// HELPERS
////////////////////////////////////////////////////////

func (h *PublicHandler) barberIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber id.")
		return 0, false
	}
	return uint(id), true
}
