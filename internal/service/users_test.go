package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franchise-api/backend/internal/model"
)

func TestCreateUserDefaults(t *testing.T) {
	store := newMemStore()
	svc := NewUserService(store)

	resp, err := svc.CreateUser(context.Background(), model.CreateUserRequest{
		Username: "  bob  ",
		Password: "Bob12345!",
		FullName: "Bob Builder",
		Email:    "Bob@Example.COM",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", resp.Username)
	assert.Equal(t, "bob@example.com", resp.Email)
	assert.True(t, resp.Active)
	assert.Equal(t, []string{"USER"}, resp.Roles, "no roles requested falls back to USER")

	account, err := store.FindUserByUsername(context.Background(), "bob")
	require.NoError(t, err)
	assert.True(t, account.PasswordChangeRequired, "provisioned accounts must rotate their password")
	assert.True(t, CheckPassword("Bob12345!", account.PasswordHash))
}

func TestCreateUserConflicts(t *testing.T) {
	store := newMemStore()
	svc := NewUserService(store)

	_, err := svc.CreateUser(context.Background(), model.CreateUserRequest{
		Username: "bob", Password: "Bob12345!", FullName: "Bob Builder", Email: "bob@example.com",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), model.CreateUserRequest{
		Username: "BOB", Password: "Bob12345!", FullName: "Other Bob", Email: "other@example.com",
	})
	assert.ErrorIs(t, err, ErrConflict, "username match is case-insensitive")

	_, err = svc.CreateUser(context.Background(), model.CreateUserRequest{
		Username: "robert", Password: "Bob12345!", FullName: "Other Bob", Email: "BOB@example.com",
	})
	assert.ErrorIs(t, err, ErrConflict, "email match is case-insensitive")
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	svc := NewUserService(newMemStore())
	_, err := svc.CreateUser(context.Background(), model.CreateUserRequest{
		Username: "bob", Password: "Bob12345!", FullName: "Bob Builder", Email: "bob@example.com",
		Roles: []string{"SUPERUSER"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateUserDeduplicatesRoles(t *testing.T) {
	svc := NewUserService(newMemStore())
	resp, err := svc.CreateUser(context.Background(), model.CreateUserRequest{
		Username: "bob", Password: "Bob12345!", FullName: "Bob Builder", Email: "bob@example.com",
		Roles: []string{"admin", " ", "ADMIN", "user"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ADMIN", "USER"}, resp.Roles)
}

func TestUpdateStatus(t *testing.T) {
	store := newMemStore()
	account := seedAccount(t, store, "bob", "Bob12345!", nil)
	svc := NewUserService(store)

	resp, err := svc.UpdateStatus(context.Background(), account.ID, false)
	require.NoError(t, err)
	assert.False(t, resp.Active)

	_, err = svc.UpdateStatus(context.Background(), "missing", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	store := newMemStore()
	account := seedAccount(t, store, "bob", "Bob12345!", nil)
	svc := NewUserService(store)

	require.NoError(t, svc.DeleteUser(context.Background(), account.ID))
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), account.ID), ErrNotFound)
}

func TestAdminResetPassword(t *testing.T) {
	store := newMemStore()
	reset := NewPasswordResetService(store, nil)
	account := seedAccount(t, store, "bob", "Bob12345!", nil)
	svc := NewUserService(store)

	_, err := reset.InitiateReset(context.Background(), "bob")
	require.NoError(t, err)

	_, err = svc.AdminResetPassword(context.Background(), account.ID, "Temp12345!")
	require.NoError(t, err)

	stored, err := store.FindUserByUsername(context.Background(), "bob")
	require.NoError(t, err)
	assert.True(t, CheckPassword("Temp12345!", stored.PasswordHash))
	assert.True(t, stored.PasswordChangeRequired, "the holder must pick their own password next")
	assert.Empty(t, stored.ResetToken, "an outstanding self-service token is discarded")
	assert.Nil(t, stored.ResetExpiresAt)
}

func TestEnsureSeedUser(t *testing.T) {
	store := newMemStore()
	svc := NewUserService(store)

	err := svc.EnsureSeedUser(context.Background(), "admin", "Admin123!", "Administrator",
		"admin@franchise.local", []model.Role{model.RoleAdmin, model.RoleUser})
	require.NoError(t, err)

	account, err := store.FindUserByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.False(t, account.PasswordChangeRequired, "bootstrap credentials log in without forced rotation")

	// A second run must not reset the stored password.
	_, err = NewPasswordResetService(store, nil).ChangePassword(context.Background(), "admin", "Admin123!", "Rotated123!")
	require.NoError(t, err)
	err = svc.EnsureSeedUser(context.Background(), "admin", "Admin123!", "Administrator",
		"admin@franchise.local", []model.Role{model.RoleAdmin})
	require.NoError(t, err)

	account, err = store.FindUserByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.True(t, CheckPassword("Rotated123!", account.PasswordHash))
}
