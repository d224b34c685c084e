package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/PlanoriaApp/appointment-scheduler/internal/domain/booking"
	"github.com/PlanoriaApp/appointment-scheduler/internal/httperr"
	"github.com/PlanoriaApp/appointment-scheduler/internal/httpresp"
	"github.com/PlanoriaApp/appointment-scheduler/internal/models"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type BusinessHandler struct {
	db *gorm.DB
}

func NewBusinessHandler(db *gorm.DB) *BusinessHandler {
	return &BusinessHandler{db: db}
}

type businessListing struct {
	ID           uint             `json:"id"`
	BusinessName string           `json:"business_name"`
	FirstName    string           `json:"first_name"`
	LastName     string           `json:"last_name"`
	Services     []models.Service `json:"services"`
}

////////////////////////////////////////////////////////
// PUBLIC LISTING
////////////////////////////////////////////////////////

func (h *BusinessHandler) ListBusinesses(c *gin.Context) {
	var businesses []models.Business
	if err := h.db.
		Preload("Owner").
		Order("id ASC").
		Find(&businesses).Error; err != nil {

		httperr.Internal(c, "failed_to_list_businesses", "Could not load businesses.")
		return
	}

	listings := make([]businessListing, 0, len(businesses))
	for _, b := range businesses {
		var services []models.Service
		h.db.Where("business_id = ?", b.ID).Order("id ASC").Find(&services)

		listings = append(listings, businessListing{
			ID:           b.ID,
			BusinessName: b.Name,
			FirstName:    b.Owner.FirstName,
			LastName:     b.Owner.LastName,
			Services:     services,
		})
	}

	httpresp.List(c, listings)
}

func (h *BusinessHandler) ListBusinessServices(c *gin.Context) {
	businessID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_business_id", "Invalid business id.")
		return
	}

	var business models.Business
	if err := h.db.First(&business, businessID).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Business not found.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("business_id = ?", business.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	httpresp.List(c, services)
}

// ListBusinessAvailability is the public view of a business's weekly
// windows, grouped by day with slots sorted by start time.
func (h *BusinessHandler) ListBusinessAvailability(c *gin.Context) {
	businessID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_business_id", "Invalid business id.")
		return
	}

	var business models.Business
	if err := h.db.
		Preload("Owner").
		First(&business, businessID).Error; err != nil {

		httperr.NotFound(c, "business_not_found", "Business not found.")
		return
	}

	var windows []models.AvailabilityWindow
	if err := h.db.
		Where("business_id = ?", business.ID).
		Find(&windows).Error; err != nil {

		httperr.Internal(c, "failed_to_list_availability", "Could not load availability.")
		return
	}

	sortWindows(windows)

	c.JSON(http.StatusOK, gin.H{
		"business_id":   business.ID,
		"business_name": business.Name,
		"availability":  windows,
	})
}

// sortWindows orders by weekday (Sunday first) then start time, the
// ordering every caller displays and the booking flow relies on.
func sortWindows(windows []models.AvailabilityWindow) {
	sort.SliceStable(windows, func(i, j int) bool {
		di := domain.WeekdayIndex(windows[i].DayOfWeek)
		dj := domain.WeekdayIndex(windows[j].DayOfWeek)
		if di != dj {
			return di < dj
		}
		return windows[i].StartTime < windows[j].StartTime
	})
}
