package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/CareBridgeServices/care-scheduler/internal/audit"
	"github.com/CareBridgeServices/care-scheduler/internal/cache"
	"github.com/CareBridgeServices/care-scheduler/internal/config"
	"github.com/CareBridgeServices/care-scheduler/internal/handlers"
	infraRepo "github.com/CareBridgeServices/care-scheduler/internal/infra/repository"
	"github.com/CareBridgeServices/care-scheduler/internal/middleware"
	ucAvailability "github.com/CareBridgeServices/care-scheduler/internal/usecase/availability"
	ucBooking "github.com/CareBridgeServices/care-scheduler/internal/usecase/booking"
	ucFeedback "github.com/CareBridgeServices/care-scheduler/internal/usecase/feedback"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	daysCch *cache.AvailabilityCache,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	careRepo := infraRepo.NewCareGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailabilityUC := ucAvailability.NewGetAvailability(careRepo)

	createBookingUC := ucBooking.NewCreateBooking(careRepo, auditDispatcher)
	changeStatusUC := ucBooking.NewChangeStatus(careRepo, auditDispatcher)
	clockUC := ucBooking.NewClock(careRepo, auditDispatcher, log)

	addFeedbackUC := ucFeedback.NewAddFeedback(careRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(db, getAvailabilityUC, daysCch)
	unavailabilityHandler := handlers.NewUnavailabilityHandler(db, daysCch)
	bookingHandler := handlers.NewBookingHandler(db, createBookingUC, changeStatusUC, clockUC, daysCch)
	feedbackHandler := handlers.NewFeedbackHandler(db, addFeedbackUC)
	memberHandler := handlers.NewMemberHandler(db)

	caregiverHandler := handlers.NewCaregiverHandler(db, auditDispatcher)
	holidayHandler := handlers.NewHolidayHandler(db)
	rateCardHandler := handlers.NewRateCardHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		// ------------------------------
		// PATIENT
		// ------------------------------
		api.GET("/caregivers", caregiverHandler.List)
		api.GET("/caregivers/:id/availability", availabilityHandler.GetForCaregiver)
		api.GET("/caregivers/:id/feedback", feedbackHandler.ListForCaregiver)

		patient := api.Group("/")
		patient.Use(middleware.RequireRole(middleware.RolePatient))
		{
			patient.POST("/caregivers/:id/appointments", bookingHandler.Create)
			patient.POST("/caregivers/:id/feedback", feedbackHandler.Create)

			patient.POST("/members", memberHandler.Create)
			patient.GET("/members", memberHandler.List)
		}

		// ------------------------------
		// CAREGIVER
		// ------------------------------
		me := api.Group("/me")
		me.Use(middleware.RequireRole(middleware.RoleCaregiver))
		{
			me.GET("/availability", availabilityHandler.GetMine)
			me.GET("/availability/template", availabilityHandler.GetTemplate)
			me.PUT("/availability", availabilityHandler.UpdateTemplate)

			me.POST("/unavailability", unavailabilityHandler.Create)
			me.GET("/unavailability", unavailabilityHandler.List)
			me.DELETE("/unavailability/:id", unavailabilityHandler.Delete)

			me.GET("/appointments", bookingHandler.ListMine)
			me.PATCH("/appointments/:id/status", bookingHandler.UpdateStatus)
			me.POST("/appointments/:id/clock-in", bookingHandler.RequestClockIn)
			me.POST("/appointments/:id/clock-in/verify", bookingHandler.VerifyClockIn)
			me.POST("/appointments/:id/clock-out", bookingHandler.ClockOut)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.RequireRole(middleware.RoleAdmin))
		{
			admin.POST("/caregivers", caregiverHandler.Onboard)
			admin.GET("/caregivers", caregiverHandler.List)

			admin.POST("/holidays", holidayHandler.Create)
			admin.GET("/holidays", holidayHandler.List)
			admin.DELETE("/holidays/:id", holidayHandler.Delete)

			admin.PUT("/rate-cards", rateCardHandler.Update)
			admin.GET("/rate-cards", rateCardHandler.List)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
