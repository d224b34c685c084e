package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/PlanoriaApp/appointment-scheduler/internal/domain/booking"
	"github.com/PlanoriaApp/appointment-scheduler/internal/httperr"
	"github.com/PlanoriaApp/appointment-scheduler/internal/httpresp"
	"github.com/PlanoriaApp/appointment-scheduler/internal/middleware"
	"github.com/PlanoriaApp/appointment-scheduler/internal/models"
)

type AvailabilityHandler struct {
	db *gorm.DB
}

func NewAvailabilityHandler(db *gorm.DB) *AvailabilityHandler {
	return &AvailabilityHandler{db: db}
}

type AddWindowRequest struct {
	DayOfWeek string `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func (h *AvailabilityHandler) Add(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var req AddWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid availability data.")
		return
	}

	if !domain.IsWeekdayName(req.DayOfWeek) {
		httperr.BadRequest(c, "invalid_day_of_week", "Day must be one of Sunday through Saturday.")
		return
	}

	startSec, err := domain.ClockSeconds(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "Invalid start time.")
		return
	}
	endSec, err := domain.ClockSeconds(req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_end_time", "Invalid end time.")
		return
	}
	if startSec >= endSec {
		httperr.BadRequest(c, "invalid_time_order", "Start time must be before end time.")
		return
	}

	window := domain.Interval{Start: startSec, End: endSec}

	// Adjacent windows on the same day are fine; overlapping ones are a
	// data-entry mistake and rejected up front.
	var existing []models.AvailabilityWindow
	if err := h.db.
		Where("business_id = ? AND day_of_week = ?", businessID, req.DayOfWeek).
		Find(&existing).Error; err != nil {

		httperr.Internal(c, "failed_to_check_availability", "Could not check existing availability.")
		return
	}
	for _, w := range existing {
		s, err1 := domain.ClockSeconds(w.StartTime)
		e, err2 := domain.ClockSeconds(w.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		if window.Overlaps(domain.Interval{Start: s, End: e}) {
			httperr.BadRequest(c, "window_overlaps", "This time slot overlaps with an existing availability.")
			return
		}
	}

	created := models.AvailabilityWindow{
		BusinessID: businessID,
		DayOfWeek:  req.DayOfWeek,
		StartTime:  domain.FormatClock(startSec),
		EndTime:    domain.FormatClock(endSec),
	}

	if err := h.db.Create(&created).Error; err != nil {
		httperr.Internal(c, "failed_to_create_window", "Could not save availability.")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *AvailabilityHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var windows []models.AvailabilityWindow
	if err := h.db.
		Where("business_id = ?", businessID).
		Find(&windows).Error; err != nil {

		httperr.Internal(c, "failed_to_list_availability", "Could not load availability.")
		return
	}

	sortWindows(windows)

	httpresp.List(c, windows)
}

func (h *AvailabilityHandler) Remove(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	windowID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_window_id", "Invalid availability id.")
		return
	}

	var window models.AvailabilityWindow
	if err := h.db.First(&window, windowID).Error; err != nil {
		httperr.NotFound(c, "window_not_found", "Availability slot not found.")
		return
	}

	if window.BusinessID != businessID {
		httperr.Forbidden(c, "window_not_owned", "You do not have permission to delete this availability slot.")
		return
	}

	if err := h.db.Delete(&window).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_window", "Could not delete availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability slot deleted successfully"})
}
