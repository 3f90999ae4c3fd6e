package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franchise-api/backend/internal/model"
)

func TestInitiateResetUsesOneMessageForBothOutcomes(t *testing.T) {
	store := newMemStore()
	seedAccount(t, store, "alice", "Alice123!", nil)
	svc := NewPasswordResetService(store, nil)

	known, err := svc.InitiateReset(context.Background(), "alice")
	require.NoError(t, err)
	unknown, err := svc.InitiateReset(context.Background(), "nobody")
	require.NoError(t, err)

	assert.Equal(t, known.Message, unknown.Message, "messages must be byte-identical")
	assert.NotEmpty(t, known.ResetToken)
	assert.Empty(t, unknown.ResetToken)
}

func TestInitiateResetOverwritesOutstandingToken(t *testing.T) {
	store := newMemStore()
	seedAccount(t, store, "alice", "Alice123!", nil)
	svc := NewPasswordResetService(store, nil)

	first, err := svc.InitiateReset(context.Background(), "alice")
	require.NoError(t, err)
	second, err := svc.InitiateReset(context.Background(), "alice")
	require.NoError(t, err)
	require.NotEqual(t, first.ResetToken, second.ResetToken)

	_, err = svc.ValidateToken(context.Background(), first.ResetToken)
	assert.ErrorIs(t, err, ErrInvalidResetToken, "the older token is dead")
	_, err = svc.ValidateToken(context.Background(), second.ResetToken)
	assert.NoError(t, err)
}

func TestValidateTokenDoesNotConsume(t *testing.T) {
	store := newMemStore()
	seedAccount(t, store, "alice", "Alice123!", nil)
	svc := NewPasswordResetService(store, nil)

	resp, err := svc.InitiateReset(context.Background(), "alice")
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), resp.ResetToken)
	require.NoError(t, err)
	_, err = svc.ValidateToken(context.Background(), resp.ResetToken)
	assert.NoError(t, err, "validation leaves the token outstanding")
}

func TestResetPasswordConsumesToken(t *testing.T) {
	store := newMemStore()
	seedAccount(t, store, "alice", "Alice123!", func(a *model.UserAccount) {
		a.PasswordChangeRequired = true
	})
	svc := NewPasswordResetService(store, nil)

	resp, err := svc.InitiateReset(context.Background(), "alice")
	require.NoError(t, err)

	_, err = svc.ResetPassword(context.Background(), resp.ResetToken, "NewPass123!")
	require.NoError(t, err)

	account, err := store.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, CheckPassword("NewPass123!", account.PasswordHash))
	assert.Empty(t, account.ResetToken)
	assert.Nil(t, account.ResetExpiresAt)
	assert.False(t, account.PasswordChangeRequired)

	_, err = svc.ResetPassword(context.Background(), resp.ResetToken, "Another123!")
	assert.ErrorIs(t, err, ErrInvalidResetToken, "a consumed token cannot be replayed")
}

func TestResetTokenExpires(t *testing.T) {
	store := newMemStore()
	seedAccount(t, store, "alice", "Alice123!", nil)
	svc := NewPasswordResetService(store, nil)

	issued := time.Unix(1700000000, 0)
	svc.now = func() time.Time { return issued }

	resp, err := svc.InitiateReset(context.Background(), "alice")
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(ResetTokenTTL + time.Second) }
	_, err = svc.ValidateToken(context.Background(), resp.ResetToken)
	assert.ErrorIs(t, err, ErrResetTokenExpired)
	_, err = svc.ResetPassword(context.Background(), resp.ResetToken, "NewPass123!")
	assert.ErrorIs(t, err, ErrResetTokenExpired)
}

func TestChangePassword(t *testing.T) {
	store := newMemStore()
	seedAccount(t, store, "alice", "Alice123!", func(a *model.UserAccount) {
		a.PasswordChangeRequired = true
	})
	svc := NewPasswordResetService(store, nil)

	_, err := svc.ChangePassword(context.Background(), "alice", "wrong", "NewPass123!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.ChangePassword(context.Background(), "alice", "Alice123!", "NewPass123!")
	require.NoError(t, err)

	account, err := store.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, CheckPassword("NewPass123!", account.PasswordHash))
	assert.False(t, account.PasswordChangeRequired)
}

func TestChangePasswordUnknownUser(t *testing.T) {
	svc := NewPasswordResetService(newMemStore(), nil)
	_, err := svc.ChangePassword(context.Background(), "nobody", "x", "NewPass123!")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChangePasswordLeavesResetTokenAlone(t *testing.T) {
	store := newMemStore()
	seedAccount(t, store, "alice", "Alice123!", nil)
	svc := NewPasswordResetService(store, nil)

	resp, err := svc.InitiateReset(context.Background(), "alice")
	require.NoError(t, err)

	_, err = svc.ChangePassword(context.Background(), "alice", "Alice123!", "NewPass123!")
	require.NoError(t, err)

	account, err := store.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, resp.ResetToken, account.ResetToken, "an in-place change does not touch the reset workflow")
}
