package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T, validity time.Duration) *TokenCodec {
	t.Helper()
	codec, err := NewTokenCodec("unit-test-secret!", validity)
	require.NoError(t, err)
	return codec
}

func TestTokenCodecRoundTrip(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	now := time.Now()

	token, err := codec.Issue("alice", []string{"ROLE_ADMIN", "ROLE_USER"}, now)
	require.NoError(t, err)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, []string{"ROLE_ADMIN", "ROLE_USER"}, claims.Roles)
	assert.False(t, codec.IsExpired(claims, now))
}

func TestTokenCodecDecodesExpiredToken(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	issuedAt := time.Now().Add(-2 * time.Hour)

	token, err := codec.Issue("alice", []string{"ROLE_USER"}, issuedAt)
	require.NoError(t, err)

	claims, err := codec.Decode(token)
	require.NoError(t, err, "expired tokens should still decode")
	assert.Equal(t, "alice", claims.Subject)
	assert.True(t, codec.IsExpired(claims, time.Now()))
}

func TestTokenCodecExpiryBoundary(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	issuedAt := time.Unix(1700000000, 0)

	token, err := codec.Issue("alice", nil, issuedAt)
	require.NoError(t, err)
	claims, err := codec.Decode(token)
	require.NoError(t, err)

	expiry := issuedAt.Add(time.Hour)
	assert.False(t, codec.IsExpired(claims, expiry.Add(-time.Second)))
	assert.True(t, codec.IsExpired(claims, expiry), "a token is expired at the exact expiry instant")
}

func TestTokenCodecRejectsWrongKey(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	other, err := NewTokenCodec("a-different-secret!", time.Hour)
	require.NoError(t, err)

	token, err := codec.Issue("alice", nil, time.Now())
	require.NoError(t, err)

	_, err = other.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenCodecRejectsMalformedToken(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	_, err := codec.Decode("not.a.token")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestTokenCodecIsValidFor(t *testing.T) {
	codec := newTestCodec(t, time.Hour)
	now := time.Now()

	token, err := codec.Issue("Alice", []string{"ROLE_USER"}, now)
	require.NoError(t, err)

	assert.True(t, codec.IsValidFor(token, "alice", now), "subject match is case-insensitive")
	assert.False(t, codec.IsValidFor(token, "bob", now))
	assert.False(t, codec.IsValidFor(token, "alice", now.Add(2*time.Hour)))
}

func TestNewTokenCodecRejectsNonPositiveValidity(t *testing.T) {
	_, err := NewTokenCodec("unit-test-secret!", 0)
	assert.ErrorIs(t, err, ErrMisconfigured)
}
