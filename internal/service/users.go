package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/franchise-api/backend/internal/db"
	"github.com/franchise-api/backend/internal/model"
)

// UserService provisions and administers accounts.
type UserService struct {
	users db.UserStore
	now   func() time.Time
}

func NewUserService(users db.UserStore) *UserService {
	return &UserService{users: users, now: time.Now}
}

// CreateUser provisions an account. Freshly created accounts are active and
// must change their password on first use.
func (s *UserService) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.UserResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if err := s.ensureUsernameFree(ctx, username); err != nil {
		return nil, err
	}
	if err := s.ensureEmailFree(ctx, email); err != nil {
		return nil, err
	}

	roles, err := resolveRoles(req.Roles)
	if err != nil {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	account := &model.UserAccount{
		ID:                     uuid.NewString(),
		Username:               username,
		PasswordHash:           hash,
		FullName:               fullName,
		Email:                  email,
		Active:                 true,
		Roles:                  roles,
		PasswordChangeRequired: true,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := s.users.SaveUser(ctx, account); err != nil {
		return nil, err
	}

	return toUserResponse(account), nil
}

func (s *UserService) GetUsers(ctx context.Context) ([]model.UserResponse, error) {
	accounts, err := s.users.FindAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]model.UserResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, *toUserResponse(account))
	}
	return responses, nil
}

func (s *UserService) UpdateStatus(ctx context.Context, id string, active bool) (*model.UserResponse, error) {
	account, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	account.Active = active
	if err := s.users.SaveUser(ctx, account); err != nil {
		return nil, err
	}
	return toUserResponse(account), nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.findByID(ctx, id); err != nil {
		return err
	}
	return s.users.DeleteUser(ctx, id)
}

// AdminResetPassword sets a new password on behalf of an administrator. The
// holder must change it on next login, and any outstanding reset token is
// discarded.
func (s *UserService) AdminResetPassword(ctx context.Context, id, newPassword string) (*model.MessageResponse, error) {
	account, err := s.findByID(ctx, id)
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
	account.PasswordChangeRequired = true
	if err := s.users.SaveUser(ctx, account); err != nil {
		return nil, err
	}

	return &model.MessageResponse{Message: "Password updated successfully."}, nil
}

// EnsureSeedUser creates the account when it does not exist yet. Seeded
// accounts are bootstrap credentials, so no password change is demanded.
func (s *UserService) EnsureSeedUser(ctx context.Context, username, password, fullName, email string, roles []model.Role) error {
	_, err := s.users.FindUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !db.IsNotFound(err) {
		return err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	now := s.now()
	return s.users.SaveUser(ctx, &model.UserAccount{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		FullName:     fullName,
		Email:        strings.ToLower(email),
		Active:       true,
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *UserService) findByID(ctx context.Context, id string) (*model.UserAccount, error) {
	account, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, fmt.Errorf("%w: user with id %q not found", ErrNotFound, id)
		}
		return nil, err
	}
	return account, nil
}

func (s *UserService) ensureUsernameFree(ctx context.Context, username string) error {
	_, err := s.users.FindUserByUsername(ctx, username)
	if err == nil {
		return fmt.Errorf("%w: a user with the name %q already exists", ErrConflict, username)
	}
	if !db.IsNotFound(err) {
		return err
	}
	return nil
}

func (s *UserService) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.users.FindUserByEmail(ctx, email)
	if err == nil {
		return fmt.Errorf("%w: a user with the email %q already exists", ErrConflict, email)
	}
	if !db.IsNotFound(err) {
		return err
	}
	return nil
}

// resolveRoles maps raw role values onto the closed enumeration. An empty or
// all-blank set falls back to the plain USER role.
func resolveRoles(raw []string) ([]model.Role, error) {
	roles := make([]model.Role, 0, len(raw))
	seen := make(map[model.Role]bool, len(raw))
	for _, value := range raw {
		if strings.TrimSpace(value) == "" {
			continue
		}
		role, err := model.ParseRole(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}
		if seen[role] {
			continue
		}
		seen[role] = true
		roles = append(roles, role)
	}
	if len(roles) == 0 {
		return []model.Role{model.RoleUser}, nil
	}
	return roles, nil
}

func toUserResponse(account *model.UserAccount) *model.UserResponse {
	return &model.UserResponse{
		ID:       account.ID,
		Username: account.Username,
		FullName: account.FullName,
		Email:    account.Email,
		Active:   account.Active,
		Roles:    model.RoleNames(account.Roles),
	}
}
