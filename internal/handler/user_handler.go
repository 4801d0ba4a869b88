package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pulseapp/pulse-backend/internal/common"
	"github.com/pulseapp/pulse-backend/internal/middleware"
	"github.com/pulseapp/pulse-backend/internal/service"
)

// UserHandler handles profile and verification requests
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GetProfile handles GET /api/v1/users/:username
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Param("username"))
	if err != nil {
		common.ErrorResponse(c, common.ErrorStatus(err), err.Error(), err)
		return
	}

	common.SuccessResponse(c, profile, nil)
}

// RequestVerification handles POST /api/v1/verification/request (requires JWT)
func (h *UserHandler) RequestVerification(c *gin.Context) {
	if err := h.service.RequestVerification(middleware.GetUserID(c)); err != nil {
		common.ErrorResponse(c, common.ErrorStatus(err), err.Error(), err)
		return
	}

	common.SuccessResponse(c, gin.H{"requested": true}, nil)
}

// ApproveVerification handles POST /api/v1/verification/approve/:username (admin only)
func (h *UserHandler) ApproveVerification(c *gin.Context) {
	if err := h.service.ApproveVerification(c.Param("username")); err != nil {
		common.ErrorResponse(c, common.ErrorStatus(err), err.Error(), err)
		return
	}

	common.SuccessResponse(c, gin.H{"verified": true}, nil)
}
