package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/PlanoriaApp/appointment-scheduler/internal/domain/booking"
	"github.com/PlanoriaApp/appointment-scheduler/internal/httperr"
	"github.com/PlanoriaApp/appointment-scheduler/internal/httpresp"
	"github.com/PlanoriaApp/appointment-scheduler/internal/middleware"
	"github.com/PlanoriaApp/appointment-scheduler/internal/models"
	ucBooking "github.com/PlanoriaApp/appointment-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC      *ucBooking.CreateAppointment
	updateUC      *ucBooking.UpdateAppointment
	deleteUC      *ucBooking.DeleteAppointment
	listBusiness  *ucBooking.ListAppointmentsForBusiness
	listCustomer  *ucBooking.ListAppointmentsForCustomer
	searchByPhone *ucBooking.SearchAppointmentsByPhone
	statsUC       *ucBooking.GetDailyStats
}

func NewAppointmentHandler(
	createUC *ucBooking.CreateAppointment,
	updateUC *ucBooking.UpdateAppointment,
	deleteUC *ucBooking.DeleteAppointment,
	listBusiness *ucBooking.ListAppointmentsForBusiness,
	listCustomer *ucBooking.ListAppointmentsForCustomer,
	searchByPhone *ucBooking.SearchAppointmentsByPhone,
	statsUC *ucBooking.GetDailyStats,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:      createUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		listBusiness:  listBusiness,
		listCustomer:  listCustomer,
		searchByPhone: searchByPhone,
		statsUC:       statsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	BusinessID    uint   `json:"business_id" binding:"required"`
	Date          string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime     string `json:"start_time" binding:"required"` // HH:MM
	Title         string `json:"title" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	Duration      int    `json:"duration"`
	Notes         string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	StartTime *string `json:"start_time"`
	Notes     *string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment data.")
		return
	}

	in := ucBooking.CreateAppointmentInput{
		BusinessID:    req.BusinessID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		ServiceTitle:  req.Title,
		Date:          req.Date,
		StartTime:     req.StartTime,
		DurationMin:   req.Duration,
		Notes:         req.Notes,
	}

	switch role {
	case models.RoleCustomer:
		in.CustomerID = &userID
	case models.RoleBusinessOwner:
		// Owners may only take bookings for their own business.
		businessID := c.MustGet(middleware.ContextBusinessID).(uint)
		if businessID != req.BusinessID {
			httperr.Forbidden(c, "business_not_owned", "You can only book for your own business.")
			return
		}
	}

	ap, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	aps, err := h.listCustomer.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListForBusiness(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	aps, err := h.listBusiness.Execute(c.Request.Context(), businessID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid update data.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucBooking.UpdateAppointmentInput{
		AppointmentID: uint(appointmentID),
		BusinessID:    businessID,
		ActorID:       userID,
		StartTime:     req.StartTime,
		Notes:         req.Notes,
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(200, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), businessID, userID, uint(appointmentID)); err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "Appointment deleted successfully"})
}

// ======================================================
// SEARCH / STATS
// ======================================================

func (h *AppointmentHandler) SearchByPhone(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	phone := c.Param("phone")

	aps, err := h.searchByPhone.Execute(c.Request.Context(), businessID, phone)
	if err != nil {
		httperr.Internal(c, "failed_to_search_appointments", "Could not search appointments.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) DailyStats(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	dateStr := c.Param("date")

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date format. Please use YYYY-MM-DD format.")
		return
	}

	stats, err := h.statsUC.Execute(c.Request.Context(), businessID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_compute_stats", "Could not compute stats.")
		return
	}

	c.JSON(200, stats)
}

// ======================================================
// ERROR MAPPING
// ======================================================

// mapBookingErrors surfaces validator rejections verbatim; callers
// branch on the exact code.
func mapBookingErrors(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "booking_failed", "Could not process the appointment.")
		return
	}

	switch code {
	case string(domain.ReasonBusinessNotAvailable):
		httperr.BadRequest(c, code, "The business is not available on this day.")
	case string(domain.ReasonOutsideBusinessHours):
		httperr.BadRequest(c, code, "This time slot is outside business hours.")
	case string(domain.ReasonOverlappingAppointment):
		httperr.BadRequest(c, code, "An appointment already exists during this time.")
	case "business_not_found", "service_not_found", "appointment_not_found":
		httperr.NotFound(c, code, "Not found.")
	default:
		httperr.BadRequest(c, code, "Invalid appointment request.")
	}
}
