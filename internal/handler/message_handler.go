package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pulseapp/pulse-backend/internal/common"
	"github.com/pulseapp/pulse-backend/internal/domain"
	"github.com/pulseapp/pulse-backend/internal/middleware"
	"github.com/pulseapp/pulse-backend/internal/service"
)

// MessageHandler handles direct message requests
type MessageHandler struct {
	service service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(service service.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Send handles POST /api/v1/messages (requires JWT)
func (h *MessageHandler) Send(c *gin.Context) {
	var req domain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	message, err := h.service.Send(middleware.GetUserID(c), &req)
	if err != nil {
		common.ErrorResponse(c, common.ErrorStatus(err), err.Error(), err)
		return
	}

	common.CreatedResponse(c, message)
}

// Inbox handles GET /api/v1/messages (requires JWT)
func (h *MessageHandler) Inbox(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	messages, meta, err := h.service.Inbox(middleware.GetUserID(c), page, limit)
	if err != nil {
		common.ErrorResponse(c, common.ErrorStatus(err), err.Error(), err)
		return
	}

	common.SuccessResponse(c, messages, meta)
}

// MarkRead handles POST /api/v1/messages/:id/read (requires JWT)
func (h *MessageHandler) MarkRead(c *gin.Context) {
	messageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid message ID", err)
		return
	}

	if err := h.service.MarkRead(middleware.GetUserID(c), messageID); err != nil {
		common.ErrorResponse(c, common.ErrorStatus(err), err.Error(), err)
		return
	}

	common.SuccessResponse(c, gin.H{"read": true}, nil)
}
