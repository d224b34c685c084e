package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PlanoriaApp/appointment-scheduler/internal/httperr"
	"github.com/PlanoriaApp/appointment-scheduler/internal/httpresp"
	"github.com/PlanoriaApp/appointment-scheduler/internal/infra/cache"
	"github.com/PlanoriaApp/appointment-scheduler/internal/middleware"
	"github.com/PlanoriaApp/appointment-scheduler/internal/models"
)

type MessageHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewMessageHandler(db *gorm.DB, cache *cache.Cache) *MessageHandler {
	return &MessageHandler{db: db, cache: cache}
}

type SendMessageRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required,max=1000"`
}

type messageResponse struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Read       bool   `json:"read"`
	CreatedAt  string `json:"created_at"`
	SenderName string `json:"sender_name"`
}

// ======================================================
// SEND (CUSTOMER)
// ======================================================

func (h *MessageHandler) Send(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	businessID, err := strconv.ParseUint(c.Param("businessID"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_business_id", "Invalid business id.")
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid message data.")
		return
	}

	if !models.IsMessageCategory(req.Title) {
		httperr.BadRequest(c, "invalid_message_title", "Message title must be one of the known categories.")
		return
	}

	var business models.Business
	if err := h.db.First(&business, businessID).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Business not found.")
		return
	}

	msg := models.Message{
		SenderID:   userID,
		BusinessID: business.ID,
		Title:      req.Title,
		Content:    req.Content,
	}

	if err := h.db.Create(&msg).Error; err != nil {
		httperr.Internal(c, "failed_to_send_message", "Could not send message.")
		return
	}

	if h.cache != nil {
		h.cache.InvalidateUnreadCount(c.Request.Context(), business.ID)
	}

	c.JSON(http.StatusCreated, msg)
}

// ======================================================
// LIST (BUSINESS, RECENCY-FIRST)
// ======================================================

func (h *MessageHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var messages []models.Message
	if err := h.db.
		Preload("Sender").
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {

		httperr.Internal(c, "failed_to_list_messages", "Could not load messages.")
		return
	}

	out := make([]messageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, messageResponse{
			ID:         m.ID,
			Title:      m.Title,
			Content:    m.Content,
			Read:       m.Read,
			CreatedAt:  m.CreatedAt.Format("2006-01-02T15:04:05"),
			SenderName: m.Sender.FirstName + " " + m.Sender.LastName,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// READ FLAG / UNREAD COUNT / DELETE
// ======================================================

func (h *MessageHandler) MarkRead(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	messageID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_message_id", "Invalid message id.")
		return
	}

	var msg models.Message
	if err := h.db.
		Where("id = ? AND business_id = ?", messageID, businessID).
		First(&msg).Error; err != nil {

		httperr.NotFound(c, "message_not_found", "Message not found.")
		return
	}

	msg.Read = true
	if err := h.db.Save(&msg).Error; err != nil {
		httperr.Internal(c, "failed_to_update_message", "Could not update message.")
		return
	}

	if h.cache != nil {
		h.cache.InvalidateUnreadCount(c.Request.Context(), businessID)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}

func (h *MessageHandler) UnreadCount(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	if h.cache != nil {
		if n, ok := h.cache.GetUnreadCount(c.Request.Context(), businessID); ok {
			c.JSON(http.StatusOK, gin.H{"unread_count": n})
			return
		}
	}

	var count int64
	if err := h.db.
		Model(&models.Message{}).
		Where("business_id = ? AND read = ?", businessID, false).
		Count(&count).Error; err != nil {

		httperr.Internal(c, "failed_to_count_messages", "Could not count messages.")
		return
	}

	if h.cache != nil {
		h.cache.SetUnreadCount(c.Request.Context(), businessID, count)
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

func (h *MessageHandler) Delete(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	messageID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_message_id", "Invalid message id.")
		return
	}

	var msg models.Message
	if err := h.db.
		Where("id = ? AND business_id = ?", messageID, businessID).
		First(&msg).Error; err != nil {

		httperr.NotFound(c, "message_not_found", "Message not found.")
		return
	}

	if err := h.db.Delete(&msg).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_message", "Could not delete message.")
		return
	}

	if h.cache != nil {
		h.cache.InvalidateUnreadCount(c.Request.Context(), businessID)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
