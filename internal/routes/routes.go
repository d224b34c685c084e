package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PlanoriaApp/appointment-scheduler/internal/audit"
	"github.com/PlanoriaApp/appointment-scheduler/internal/config"
	"github.com/PlanoriaApp/appointment-scheduler/internal/handlers"
	"github.com/PlanoriaApp/appointment-scheduler/internal/infra/cache"
	infraRepo "github.com/PlanoriaApp/appointment-scheduler/internal/infra/repository"
	"github.com/PlanoriaApp/appointment-scheduler/internal/infra/search"
	"github.com/PlanoriaApp/appointment-scheduler/internal/middleware"
	"github.com/PlanoriaApp/appointment-scheduler/internal/models"
	ucBooking "github.com/PlanoriaApp/appointment-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, statsCache *cache.Cache) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	matcher := search.NewClient(cfg.SearchServiceURL)

	// A nil *cache.Cache is valid and always misses.
	var stats ucBooking.StatsCache = statsCache

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		auditDispatcher,
		stats,
	)

	updateAppointmentUC := ucBooking.NewUpdateAppointment(
		bookingRepo,
		auditDispatcher,
		stats,
	)

	deleteAppointmentUC := ucBooking.NewDeleteAppointment(
		bookingRepo,
		auditDispatcher,
		stats,
	)

	listForBusinessUC := ucBooking.NewListAppointmentsForBusiness(bookingRepo)
	listForCustomerUC := ucBooking.NewListAppointmentsForCustomer(bookingRepo)
	searchByPhoneUC := ucBooking.NewSearchAppointmentsByPhone(bookingRepo)
	dailyStatsUC := ucBooking.NewGetDailyStats(bookingRepo, stats)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	businessHandler := handlers.NewBusinessHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(db)
	messageHandler := handlers.NewMessageHandler(db, statsCache)
	searchHandler := handlers.NewSearchHandler(db, matcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		listForBusinessUC,
		listForCustomerUC,
		searchByPhoneUC,
		dailyStatsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/businesses", businessHandler.ListBusinesses)
			publicAPI.GET("/businesses/:id/services", businessHandler.ListBusinessServices)
			publicAPI.GET("/businesses/:id/availability", businessHandler.ListBusinessAvailability)
		}

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/search", searchHandler.Search)

			// Booking is open to both roles: customers book for
			// themselves, owners book on behalf of callers.
			secured.POST("/appointments", appointmentHandler.Create)

			customer := secured.Group("/")
			customer.Use(middleware.RequireRole(models.RoleCustomer))
			{
				customer.GET("/appointments/mine", appointmentHandler.ListMine)
				customer.POST("/messages/:businessID", messageHandler.Send)
			}

			business := secured.Group("/business")
			business.Use(middleware.RequireRole(models.RoleBusinessOwner))
			{
				business.GET("/services", serviceHandler.List)
				business.POST("/services", serviceHandler.Create)
				business.PUT("/services/:id", serviceHandler.Update)
				business.DELETE("/services/:id", serviceHandler.Delete)

				business.GET("/availability", availabilityHandler.List)
				business.POST("/availability", availabilityHandler.Add)
				business.DELETE("/availability/:id", availabilityHandler.Remove)

				business.GET("/appointments", appointmentHandler.ListForBusiness)
				business.PATCH("/appointments/:id", appointmentHandler.Update)
				business.DELETE("/appointments/:id", appointmentHandler.Delete)
				business.GET("/appointments/search/:phone", appointmentHandler.SearchByPhone)
				business.GET("/appointments/stats/:date", appointmentHandler.DailyStats)

				business.GET("/messages", messageHandler.List)
				business.PATCH("/messages/:id/read", messageHandler.MarkRead)
				business.GET("/messages/unread-count", messageHandler.UnreadCount)
				business.DELETE("/messages/:id", messageHandler.Delete)
			}
		}
	}
}
