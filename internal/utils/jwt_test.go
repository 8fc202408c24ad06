package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager() TokenManager {
	return TokenManager{
		AccessSecret:    []byte("access-secret"),
		RefreshSecret:   []byte("refresh-secret"),
		Issuer:          "test",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 30 * 24 * time.Hour,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := testManager()
	token, ttl, err := m.IssueAccessToken("user-1", "alice", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, ttl)

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "test", claims.Issuer)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := testManager()
	token, ttl, err := m.IssueRefreshToken("user-1")
	require.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, ttl)

	subject, err := m.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	m := testManager()
	first, _, err := m.IssueRefreshToken("user-1")
	require.NoError(t, err)
	second, _, err := m.IssueRefreshToken("user-1")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestSecretsAreNotInterchangeable(t *testing.T) {
	m := testManager()

	access, _, err := m.IssueAccessToken("user-1", "alice", "alice@example.com")
	require.NoError(t, err)
	refresh, _, err := m.IssueRefreshToken("user-1")
	require.NoError(t, err)

	_, err = m.ParseRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = m.ParseAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m := testManager()
	token, _, err := m.IssueAccessToken("user-1", "alice", "alice@example.com")
	require.NoError(t, err)

	other := testManager()
	other.AccessSecret = []byte("someone-else")
	_, err = other.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := testManager()
	m.AccessTokenTTL = -time.Minute
	token, _, err := m.IssueAccessToken("user-1", "alice", "alice@example.com")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := testManager()
	_, err := m.ParseAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = m.ParseRefreshToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
