package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campuscuts/booking-api/internal/httperr"
	"github.com/campuscuts/booking-api/internal/middleware"
	"github.com/campuscuts/booking-api/internal/models"
	"github.com/campuscuts/booking-api/internal/storage"
)

type MediaHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewMediaHandler(db *gorm.DB, uploader *storage.Uploader) *MediaHandler {
	return &MediaHandler{
		db:       db,
		uploader: uploader,
	}
}

// UploadAvatar accepts a jpeg/png multipart upload, re-encodes it as a
// bounded webp and stores it in S3; the resulting URL lands on the
// barber's profile.
func (h *MediaHandler) UploadAvatar(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var profile models.BarberProfile
	if err := h.db.Where("user_id = ?", barberID).First(&profile).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Barber profile not found.")
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}
	defer file.Close()

	encoded, err := storage.ReencodeWebP(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "The file could not be decoded as an image.")
		return
	}

	url, err := h.uploader.UploadWebP(c.Request.Context(), "avatars", encoded)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not store the image.")
		return
	}

	profile.AvatarURL = url
	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not update the profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
