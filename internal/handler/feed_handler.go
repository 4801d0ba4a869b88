package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pulseapp/pulse-backend/internal/common"
	"github.com/pulseapp/pulse-backend/internal/service"
)

// FeedHandler handles feed requests
type FeedHandler struct {
	service service.FeedService
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(service service.FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

// Get handles GET /api/v1/feed?sort=top|recent&page=&limit=
func (h *FeedHandler) Get(c *gin.Context) {
	sort := c.DefaultQuery("sort", service.SortTop)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	views, meta, err := h.service.GetFeed(c.Request.Context(), sort, page, limit)
	if err != nil {
		common.ErrorResponse(c, common.ErrorStatus(err), "Failed to load feed", err)
		return
	}

	common.SuccessResponse(c, views, meta)
}
