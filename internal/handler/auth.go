package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franchise-api/backend/internal/model"
	"github.com/franchise-api/backend/internal/service"
)

type AuthHandler struct {
	auth  *service.AuthService
	reset *service.PasswordResetService
}

func NewAuthHandler(auth *service.AuthService, reset *service.PasswordResetService) *AuthHandler {
	return &AuthHandler{auth: auth, reset: reset}
}

// Login godoc
// @Summary Login
// @Description Exchanges a username and password for a signed session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Username and password"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} model.APIError
// @Failure 401 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ForgotPassword godoc
// @Summary Request a password reset token
// @Description Responds with the same message whether or not the account exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.ForgotPasswordRequest true "Account username"
// @Success 200 {object} model.ForgotPasswordResponse
// @Failure 400 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req model.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.reset.InitiateReset(c.Request.Context(), req.Username)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ValidateResetToken godoc
// @Summary Check a reset token
// @Description Validates an outstanding reset token without consuming it.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.ValidateTokenRequest true "Reset token"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/auth/validate-reset-token [post]
func (h *AuthHandler) ValidateResetToken(c *gin.Context) {
	var req model.ValidateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.reset.ValidateToken(c.Request.Context(), req.Token)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ResetPassword godoc
// @Summary Reset a password with a token
// @Description Consumes the reset token and replaces the password.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.reset.ResetPassword(c.Request.Context(), req.Token, req.NewPassword)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ChangePassword godoc
// @Summary Change the caller's password
// @Description Replaces the password of the authenticated account after re-checking the current one.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.APIError
// @Failure 401 {object} model.APIError
// @Failure 500 {object} model.APIError
// @Router /api/v1/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	principal := GetAuthUser(c)
	if principal == nil {
		writeError(c, service.ErrUnauthorized)
		return
	}

	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.reset.ChangePassword(c.Request.Context(), principal.Username, req.CurrentPassword, req.NewPassword)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
