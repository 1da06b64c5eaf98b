package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/levelupglow/salon-scheduler/internal/audit"
	"github.com/levelupglow/salon-scheduler/internal/cache"
	"github.com/levelupglow/salon-scheduler/internal/config"
	"github.com/levelupglow/salon-scheduler/internal/handlers"
	infraRepo "github.com/levelupglow/salon-scheduler/internal/infra/repository"
	"github.com/levelupglow/salon-scheduler/internal/middleware"
	"github.com/levelupglow/salon-scheduler/internal/models"
	ucAvailability "github.com/levelupglow/salon-scheduler/internal/usecase/availability"
	ucBooking "github.com/levelupglow/salon-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	slotCache := cache.NewSlotCache(rdb, cfg.SlotCacheTTL)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — AVAILABILITY
	// ======================================================
	calendarUC := ucAvailability.NewCalendar(bookingRepo, cfg.SalonTimezone)
	resolveSlotsUC := ucAvailability.NewResolveSlots(bookingRepo, slotCache)
	getWeeklyHoursUC := ucAvailability.NewGetWeeklyHours(bookingRepo)
	saveWeeklyHoursUC := ucAvailability.NewSaveWeeklyHours(
		bookingRepo,
		auditDispatcher,
		slotCache,
	)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		calendarUC,
		auditDispatcher,
		slotCache,
	)
	confirmBookingUC := ucBooking.NewConfirmBooking(
		bookingRepo,
		auditDispatcher,
		cfg.SalonTimezone,
	)
	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
		slotCache,
		cfg.SalonTimezone,
	)
	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
		auditDispatcher,
		cfg.SalonTimezone,
	)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		bookingRepo,
		calendarUC,
		resolveSlotsUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		confirmBookingUC,
		cancelBookingUC,
		completeBookingUC,
		listBookingsUC,
	)

	scheduleHandler := handlers.NewScheduleHandler(
		getWeeklyHoursUC,
		saveWeeklyHoursUC,
	)

	adminHandler := handlers.NewAdminHandler(db)
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
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/stylists", publicHandler.ListStylists)
			publicAPI.GET("/stylists/:id/calendar", publicHandler.Calendar)
			publicAPI.GET("/stylists/:id/slots", publicHandler.Slots)
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

			// Clients book and manage their own appointments.
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.MyBookings)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

			// Stylist schedule + agenda.
			staff := secured.Group("/")
			staff.Use(middleware.RequireRole(models.RoleStylist, models.RoleAdmin))
			{
				staff.GET("/me/schedule", scheduleHandler.Get)
				staff.PUT("/me/schedule", scheduleHandler.Update)
				staff.GET("/me/bookings/agenda", bookingHandler.Agenda)

				staff.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
				staff.PATCH("/bookings/:id/complete", bookingHandler.Complete)
			}

			// Catalog management.
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/services", adminHandler.ListServices)
				admin.POST("/services", adminHandler.CreateService)
				admin.PATCH("/services/:id", adminHandler.UpdateService)

				admin.POST("/stylists", adminHandler.CreateStylist)
				admin.PATCH("/stylists/:id", adminHandler.UpdateStylist)
				admin.POST("/stylists/:id/services", adminHandler.AssignService)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
