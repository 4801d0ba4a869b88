package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pulseapp/pulse-backend/internal/common"
	"github.com/pulseapp/pulse-backend/internal/middleware"
	"github.com/pulseapp/pulse-backend/internal/service"
)

// SubscriptionHandler handles follow requests
type SubscriptionHandler struct {
	service service.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler
func NewSubscriptionHandler(service service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

// Follow handles POST /api/v1/users/:username/follow (requires JWT)
func (h *SubscriptionHandler) Follow(c *gin.Context) {
	result, err := h.service.Follow(middleware.GetUserID(c), c.Param("username"))
	if err != nil {
		common.ErrorResponse(c, common.ErrorStatus(err), err.Error(), err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

// Unfollow handles DELETE /api/v1/users/:username/follow (requires JWT)
func (h *SubscriptionHandler) Unfollow(c *gin.Context) {
	result, err := h.service.Unfollow(middleware.GetUserID(c), c.Param("username"))
	if err != nil {
		common.ErrorResponse(c, common.ErrorStatus(err), err.Error(), err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

// Followers handles GET /api/v1/users/:username/followers
func (h *SubscriptionHandler) Followers(c *gin.Context) {
	users, err := h.service.ListFollowers(c.Param("username"))
	if err != nil {
		common.ErrorResponse(c, common.ErrorStatus(err), err.Error(), err)
		return
	}

	common.SuccessResponse(c, users, nil)
}

// Following handles GET /api/v1/users/:username/following
func (h *SubscriptionHandler) Following(c *gin.Context) {
	users, err := h.service.ListFollowing(c.Param("username"))
	if err != nil {
		common.ErrorResponse(c, common.ErrorStatus(err), err.Error(), err)
		return
	}

	common.SuccessResponse(c, users, nil)
}
