package service

import (
	"context"
	"strings"

	"github.com/franchise-api/backend/internal/db"
	"github.com/franchise-api/backend/internal/model"
)

// memStore is an in-memory db.Store used by the service tests. Reads return
// copies, so callers only change stored state by saving.
type memStore struct {
	users      map[string]*model.UserAccount
	franchises map[string]*model.Franchise
}

func newMemStore() *memStore {
	return &memStore{
		users:      make(map[string]*model.UserAccount),
		franchises: make(map[string]*model.Franchise),
	}
}

func (m *memStore) FindUserByID(ctx context.Context, id string) (*model.UserAccount, error) {
	if account, ok := m.users[id]; ok {
		return cloneUser(account), nil
	}
	return nil, db.ErrNotFound
}

func (m *memStore) FindUserByUsername(ctx context.Context, username string) (*model.UserAccount, error) {
	for _, account := range m.users {
		if strings.EqualFold(account.Username, username) {
			return cloneUser(account), nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *memStore) FindUserByEmail(ctx context.Context, email string) (*model.UserAccount, error) {
	for _, account := range m.users {
		if strings.EqualFold(account.Email, email) {
			return cloneUser(account), nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *memStore) FindUserByResetToken(ctx context.Context, token string) (*model.UserAccount, error) {
	for _, account := range m.users {
		if account.ResetToken != "" && account.ResetToken == token {
			return cloneUser(account), nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *memStore) FindAllUsers(ctx context.Context) ([]*model.UserAccount, error) {
	out := make([]*model.UserAccount, 0, len(m.users))
	for _, account := range m.users {
		out = append(out, cloneUser(account))
	}
	return out, nil
}

func (m *memStore) SaveUser(ctx context.Context, account *model.UserAccount) error {
	m.users[account.ID] = cloneUser(account)
	return nil
}

func (m *memStore) DeleteUser(ctx context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return db.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memStore) FindFranchiseByID(ctx context.Context, id string) (*model.Franchise, error) {
	if franchise, ok := m.franchises[id]; ok {
		return cloneFranchise(franchise), nil
	}
	return nil, db.ErrNotFound
}

func (m *memStore) FindFranchiseByName(ctx context.Context, name string) (*model.Franchise, error) {
	for _, franchise := range m.franchises {
		if strings.EqualFold(franchise.Name, name) {
			return cloneFranchise(franchise), nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *memStore) FindAllFranchises(ctx context.Context) ([]*model.Franchise, error) {
	out := make([]*model.Franchise, 0, len(m.franchises))
	for _, franchise := range m.franchises {
		out = append(out, cloneFranchise(franchise))
	}
	return out, nil
}

func (m *memStore) SaveFranchise(ctx context.Context, franchise *model.Franchise) error {
	m.franchises[franchise.ID] = cloneFranchise(franchise)
	return nil
}

func (m *memStore) DeleteFranchise(ctx context.Context, id string) error {
	if _, ok := m.franchises[id]; !ok {
		return db.ErrNotFound
	}
	delete(m.franchises, id)
	return nil
}

func (m *memStore) EnsureSchema(ctx context.Context) error { return nil }

func (m *memStore) Close() {}

func cloneUser(account *model.UserAccount) *model.UserAccount {
	out := *account
	out.Roles = append([]model.Role(nil), account.Roles...)
	if account.ResetExpiresAt != nil {
		expires := *account.ResetExpiresAt
		out.ResetExpiresAt = &expires
	}
	return &out
}

func cloneFranchise(franchise *model.Franchise) *model.Franchise {
	out := *franchise
	if franchise.Active != nil {
		active := *franchise.Active
		out.Active = &active
	}
	out.Branches = make([]model.Branch, len(franchise.Branches))
	for i, branch := range franchise.Branches {
		out.Branches[i] = branch
		out.Branches[i].Products = append([]model.Product(nil), branch.Products...)
	}
	return &out
}
