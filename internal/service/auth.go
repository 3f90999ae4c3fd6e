package service

import (
	"context"
	"time"

	"github.com/franchise-api/backend/internal/db"
	"github.com/franchise-api/backend/internal/model"
)

// AuthService verifies credentials and issues session tokens.
type AuthService struct {
	users db.UserStore
	codec *TokenCodec
	now   func() time.Time
}

func NewAuthService(users db.UserStore, codec *TokenCodec) *AuthService {
	return &AuthService{users: users, codec: codec, now: time.Now}
}

// Authenticate checks a username/password pair and returns the principal.
// A missing account, an inactive account and a wrong password all fail with
// the same generic ErrUnauthorized so callers cannot probe which one it was.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*model.Principal, error) {
	account, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if !account.Active {
		return nil, ErrUnauthorized
	}
	if !CheckPassword(password, account.PasswordHash) {
		return nil, ErrUnauthorized
	}

	return &model.Principal{Username: account.Username, Roles: account.Roles}, nil
}

// Login authenticates and builds the session response. The username in the
// response carries the store's canonical casing, and passwordChangeRequired
// is re-read from the store so it reflects the latest persisted state.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.AuthResponse, error) {
	principal, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	token, err := s.codec.Issue(principal.Username, model.Authorities(principal.Roles), now)
	if err != nil {
		return nil, err
	}

	changeRequired := false
	if account, err := s.users.FindUserByUsername(ctx, principal.Username); err == nil {
		changeRequired = account.PasswordChangeRequired
	}

	return &model.AuthResponse{
		Token:                  token,
		Username:               principal.Username,
		Roles:                  model.RoleNames(principal.Roles),
		ExpiresAt:              now.Add(s.codec.Validity()).UnixMilli(),
		PasswordChangeRequired: changeRequired,
	}, nil
}
