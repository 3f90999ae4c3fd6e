package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/franchise-api/backend/internal/db"
	"github.com/franchise-api/backend/internal/model"
)

// ResetTokenTTL is how long an issued reset token stays usable.
const ResetTokenTTL = 15 * time.Minute

// genericResetMessage is returned whether or not the account exists, so the
// forgot-password endpoint cannot be used to enumerate accounts.
const genericResetMessage = "If the account exists, you will receive instructions to reset your password."

// PasswordResetService drives the reset-token lifecycle and in-place password
// changes. Expired tokens are rejected on read, never swept in the
// background; a second InitiateReset simply overwrites the outstanding token.
type PasswordResetService struct {
	users  db.UserStore
	logger *slog.Logger
	now    func() time.Time
}

func NewPasswordResetService(users db.UserStore, logger *slog.Logger) *PasswordResetService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PasswordResetService{users: users, logger: logger, now: time.Now}
}

// InitiateReset issues a fresh single-use token for the account. Both the
// found and not-found outcomes return the same message; only the token field
// differs. The token is returned inline; delivering it out of band is the
// caller's concern.
func (s *PasswordResetService) InitiateReset(ctx context.Context, username string) (*model.ForgotPasswordResponse, error) {
	account, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		if db.IsNotFound(err) {
			s.logger.Warn("password reset requested for unknown account", "username", username)
			return &model.ForgotPasswordResponse{Message: genericResetMessage}, nil
		}
		return nil, err
	}

	token := uuid.NewString()
	expiresAt := s.now().Add(ResetTokenTTL)
	account.ResetToken = token
	account.ResetExpiresAt = &expiresAt
	if err := s.users.SaveUser(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("password reset token generated", "username", account.Username)
	return &model.ForgotPasswordResponse{Message: genericResetMessage, ResetToken: token}, nil
}

// ValidateToken checks an outstanding token without consuming it.
func (s *PasswordResetService) ValidateToken(ctx context.Context, token string) (*model.MessageResponse, error) {
	if _, err := s.lookupResetToken(ctx, token); err != nil {
		return nil, err
	}
	return &model.MessageResponse{Message: "Token is valid. You can set a new password."}, nil
}

// ResetPassword consumes the token: the hash is replaced, the token and its
// expiry are cleared together and the change-required flag is lifted.
func (s *PasswordResetService) ResetPassword(ctx context.Context, token, newPassword string) (*model.MessageResponse, error) {
	account, err := s.lookupResetToken(ctx, token)
	if err != nil {
		return nil, err
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return nil, err
	}

	account.PasswordHash = hash
	account.ResetToken = ""
	account.ResetExpiresAt = nil
	account.PasswordChangeRequired = false
	if err := s.users.SaveUser(ctx, account); err != nil {
		return nil, err
	}

	return &model.MessageResponse{Message: "Password updated successfully."}, nil
}

// ChangePassword replaces the password of an authenticated caller after
// re-checking the current one. Reset-token fields are left untouched.
func (s *PasswordResetService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (*model.MessageResponse, error) {
	account, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}

	if !CheckPassword(currentPassword, account.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return nil, err
	}

	account.PasswordHash = hash
	account.PasswordChangeRequired = false
	if err := s.users.SaveUser(ctx, account); err != nil {
		return nil, err
	}

	return &model.MessageResponse{Message: "Password updated successfully."}, nil
}

func (s *PasswordResetService) lookupResetToken(ctx context.Context, token string) (*model.UserAccount, error) {
	account, err := s.users.FindUserByResetToken(ctx, token)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, ErrInvalidResetToken
		}
		return nil, err
	}
	if account.ResetExpiresAt == nil || s.now().After(*account.ResetExpiresAt) {
		return nil, ErrResetTokenExpired
	}
	return account, nil
}
