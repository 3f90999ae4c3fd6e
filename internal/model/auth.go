package model

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token                  string   `json:"token"`
	Username               string   `json:"username"`
	Roles                  []string `json:"roles"`
	ExpiresAt              int64    `json:"expiresAt"`
	PasswordChangeRequired bool     `json:"passwordChangeRequired"`
}

type ForgotPasswordRequest struct {
	Username string `json:"username" binding:"required"`
}

// ForgotPasswordResponse carries the same message whether or not the account
// exists; only ResetToken distinguishes the two outcomes.
type ForgotPasswordResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken,omitempty"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type ValidateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
