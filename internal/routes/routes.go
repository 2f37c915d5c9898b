package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/campuscuts/booking-api/internal/audit"
	"github.com/campuscuts/booking-api/internal/cache"
	"github.com/campuscuts/booking-api/internal/config"
	"github.com/campuscuts/booking-api/internal/handlers"
	infraRepo "github.com/campuscuts/booking-api/internal/infra/repository"
	"github.com/campuscuts/booking-api/internal/middleware"
	"github.com/campuscuts/booking-api/internal/models"
	"github.com/campuscuts/booking-api/internal/storage"
	ucBooking "github.com/campuscuts/booking-api/internal/usecase/booking"
	ucReview "github.com/campuscuts/booking-api/internal/usecase/review"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	slotCache := cache.NewSlotCache(rdb)
	uploader := storage.NewUploader(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, slotCache)
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, slotCache, auditDispatcher)
	transitionUC := ucBooking.NewTransitionBooking(bookingRepo, slotCache, auditDispatcher)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	createReviewUC := ucReview.NewCreateReview(db, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	profileHandler := handlers.NewProfileHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(db, slotCache)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, transitionUC, listBookingsUC)
	publicHandler := handlers.NewPublicHandler(db, availabilityUC)
	reviewHandler := handlers.NewReviewHandler(createReviewUC)
	mediaHandler := handlers.NewMediaHandler(db, uploader)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/barbers/:id", publicHandler.GetBarber)
			publicAPI.GET("/barbers/:id/availability", publicHandler.Availability)
			publicAPI.GET("/barbers/:id/reviews", publicHandler.ListReviews)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/bookings", bookingHandler.List)
			secured.GET("/me/audit-logs", auditLogsHandler.List)

			// either party of the booking, guard decides
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

			// ------------------------------
			// CUSTOMER
			// ------------------------------
			customer := secured.Group("/")
			customer.Use(middleware.RequireRole(models.RoleCustomer))
			{
				customer.POST("/bookings", bookingHandler.Create)
				customer.POST("/bookings/:id/review", reviewHandler.Create)
			}

			// ------------------------------
			// BARBER
			// ------------------------------
			barber := secured.Group("/")
			barber.Use(middleware.RequireRole(models.RoleBarber))
			{
				barber.GET("/me/profile", profileHandler.Get)
				barber.PATCH("/me/profile", profileHandler.Update)
				barber.POST("/me/profile/avatar", mediaHandler.UploadAvatar)

				barber.GET("/me/availability", availabilityHandler.ListRecurring)
				barber.POST("/me/availability", availabilityHandler.CreateRecurring)
				barber.DELETE("/me/availability/:id", availabilityHandler.DeleteRecurring)

				barber.GET("/me/availability/exceptions", availabilityHandler.ListExceptions)
				barber.PUT("/me/availability/exceptions", availabilityHandler.UpsertException)
				barber.DELETE("/me/availability/exceptions/:id", availabilityHandler.DeleteException)

				barber.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
				barber.PATCH("/bookings/:id/complete", bookingHandler.Complete)
				barber.PATCH("/bookings/:id/no-show", bookingHandler.MarkNoShow)
			}
		}
	}
}
