package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PlanoriaApp/appointment-scheduler/internal/httperr"
	"github.com/PlanoriaApp/appointment-scheduler/internal/infra/search"
	"github.com/PlanoriaApp/appointment-scheduler/internal/models"
)

// SearchHandler forwards free-text queries to the external matching
// service together with the current business catalog.
type SearchHandler struct {
	db      *gorm.DB
	matcher search.Matcher
}

func NewSearchHandler(db *gorm.DB, matcher search.Matcher) *SearchHandler {
	return &SearchHandler{db: db, matcher: matcher}
}

type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

func (h *SearchHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A search query is required.")
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		httperr.BadRequest(c, "empty_query", "A search query is required.")
		return
	}

	var businesses []models.Business
	if err := h.db.Order("id ASC").Find(&businesses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_businesses", "Could not load businesses.")
		return
	}

	summaries := make([]search.BusinessSummary, 0, len(businesses))
	for _, b := range businesses {
		var services []models.Service
		h.db.Where("business_id = ?", b.ID).Find(&services)

		summary := search.BusinessSummary{
			ID:           b.ID,
			BusinessName: b.Name,
		}
		for _, s := range services {
			summary.Services = append(summary.Services, search.ServiceSummary{
				ID:   s.ID,
				Name: s.Name,
			})
		}
		summaries = append(summaries, summary)
	}

	result, err := h.matcher.AnalyzeQuery(c.Request.Context(), query, summaries)
	if err != nil {
		httperr.Internal(c, "search_failed", "The search service is unavailable.")
		return
	}

	c.JSON(http.StatusOK, result)
}
