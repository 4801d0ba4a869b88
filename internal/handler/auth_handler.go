package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pulseapp/pulse-backend/internal/common"
	"github.com/pulseapp/pulse-backend/internal/middleware"
	"github.com/pulseapp/pulse-backend/internal/service"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	user, err := h.service.Register(&req)
	if errors.Is(err, common.ErrUserAlreadyExists) {
		common.ErrorResponse(c, 409, "Username already taken", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Registration failed", err)
		return
	}

	common.CreatedResponse(c, user)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	response, err := h.service.Login(req.Username, req.Password)
	if errors.Is(err, common.ErrInvalidCredentials) {
		common.ErrorResponse(c, 401, "Invalid credentials", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: response})
}

// RefreshRequest refresh token request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh handles POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	tokens, err := h.service.RefreshToken(req.RefreshToken)
	if errors.Is(err, common.ErrInvalidToken) {
		common.ErrorResponse(c, 401, "Invalid refresh token", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, common.ErrorStatus(err), "Token refresh failed", err)
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{Data: tokens})
}

// Me handles GET /api/v1/auth/me (requires JWT)
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, common.APIResponse{
		Data: gin.H{
			"user_id":  middleware.GetUserID(c),
			"username": middleware.GetUsername(c),
			"is_admin": middleware.IsAdmin(c),
		},
	})
}
