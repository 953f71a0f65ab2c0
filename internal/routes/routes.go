package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/sharpcuts/barber-booking/internal/audit"
	"github.com/sharpcuts/barber-booking/internal/cache"
	"github.com/sharpcuts/barber-booking/internal/config"
	"github.com/sharpcuts/barber-booking/internal/handlers"
	infraRepo "github.com/sharpcuts/barber-booking/internal/infra/repository"
	"github.com/sharpcuts/barber-booking/internal/middleware"
	"github.com/sharpcuts/barber-booking/internal/schedule"
	"github.com/sharpcuts/barber-booking/internal/storage"
	"github.com/sharpcuts/barber-booking/internal/timezone"
	ucBooking "github.com/sharpcuts/barber-booking/internal/usecase/booking"
	ucLeave "github.com/sharpcuts/barber-booking/internal/usecase/leave"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.ShopTimezone)

	grid, err := schedule.NewGrid(cfg.ShopOpen, cfg.ShopClose, cfg.SlotMinutes, loc)
	if err != nil {
		logrus.WithError(err).Fatal("invalid shop hours configuration")
	}
	clock := schedule.NewSystemClock(loc)

	bookingRepo := infraRepo.NewBookingGormRepository(db)
	leaveRepo := infraRepo.NewLeaveGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	serviceCache := cache.New(cfg.RedisURL)
	uploader := storage.NewUploader(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, leaveRepo, grid, clock)
	bookUC := ucBooking.NewBook(bookingRepo, leaveRepo, grid, auditDispatcher)
	listAppointmentsUC := ucBooking.NewListAppointments(bookingRepo, loc)
	updateStatusUC := ucBooking.NewUpdateStatus(bookingRepo, auditDispatcher)
	markInformedUC := ucBooking.NewMarkInformed(bookingRepo, auditDispatcher)
	dashboardUC := ucBooking.NewDashboard(bookingRepo, leaveRepo, clock)

	addLeaveUC := ucLeave.NewAdd(leaveRepo, auditDispatcher)
	listLeavesUC := ucLeave.NewList(leaveRepo)
	removeLeaveUC := ucLeave.NewRemove(leaveRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	publicHandler := handlers.NewPublicHandler(db, serviceCache, availabilityUC, bookUC, loc)
	appointmentHandler := handlers.NewAppointmentHandler(listAppointmentsUC, updateStatusUC, markInformedUC, loc)
	leaveHandler := handlers.NewLeaveHandler(addLeaveUC, listLeavesUC, removeLeaveUC)
	serviceHandler := handlers.NewServiceHandler(db, serviceCache, uploader, auditDispatcher)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
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
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
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
			secured.GET("/me/dashboard", dashboardHandler.Get)

			secured.GET("/me/appointments", appointmentHandler.List)
			secured.PATCH("/me/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.PATCH("/me/appointments/:id/inform", appointmentHandler.MarkInformed)

			secured.GET("/me/leaves", leaveHandler.List)
			secured.POST("/me/leaves", leaveHandler.Add)
			secured.DELETE("/me/leaves/:id", leaveHandler.Remove)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)
			secured.POST("/me/services/seed", serviceHandler.Seed)
			secured.POST("/me/services/:id/image", serviceHandler.UploadImage)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
