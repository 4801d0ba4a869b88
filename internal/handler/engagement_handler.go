package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pulseapp/pulse-backend/internal/common"
	"github.com/pulseapp/pulse-backend/internal/middleware"
	"github.com/pulseapp/pulse-backend/internal/service"
)

// EngagementHandler handles like and repost requests
type EngagementHandler struct {
	service service.EngagementService
}

// NewEngagementHandler creates a new EngagementHandler
func NewEngagementHandler(service service.EngagementService) *EngagementHandler {
	return &EngagementHandler{service: service}
}

// ToggleLike handles POST /api/v1/posts/:id/like (requires JWT)
func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid post ID", err)
		return
	}

	result, err := h.service.ToggleLike(c.Request.Context(), middleware.GetUserID(c), postID)
	if err != nil {
		common.ErrorResponse(c, common.ErrorStatus(err), err.Error(), err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

// Repost handles POST /api/v1/posts/:id/repost (requires JWT)
func (h *EngagementHandler) Repost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid post ID", err)
		return
	}

	result, err := h.service.Repost(c.Request.Context(), middleware.GetUserID(c), postID)
	if err != nil {
		common.ErrorResponse(c, common.ErrorStatus(err), err.Error(), err)
		return
	}

	common.CreatedResponse(c, result)
}
