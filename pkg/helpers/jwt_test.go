package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *JWTManager {
	return NewJWTManager("test-access-secret", "test-refresh-secret", "inventory-management", time.Hour, 168*time.Hour)
}

func TestJWTManager_AccessTokenClaims(t *testing.T) {
	m := newTestManager()

	token, exp, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "inventory-management", claims.Issuer)
	assert.Contains(t, claims.Audience, "inventory-management")
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.NotBefore.Time.Before(time.Now()))
	assert.True(t, claims.IssuedAt.Time.Before(time.Now().Add(time.Second)))
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestJWTManager_TokenIDsAreUnique(t *testing.T) {
	m := newTestManager()

	t1, _, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)
	t2, _, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)

	c1, err := m.ParseAccessToken(t1)
	require.NoError(t, err)
	c2, err := m.ParseAccessToken(t2)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestJWTManager_RefreshOutlivesAccess(t *testing.T) {
	m := newTestManager()

	_, aexp, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)
	_, rexp, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	assert.True(t, rexp.After(aexp))
}

func TestJWTManager_SecretsAreDistinct(t *testing.T) {
	m := newTestManager()

	refresh, _, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	// a refresh token must not verify as an access token
	_, err = m.ParseAccessToken(refresh)
	assert.Error(t, err)

	_, err = m.ParseRefreshToken(refresh)
	assert.NoError(t, err)
}

func TestJWTManager_RejectsForeignIssuer(t *testing.T) {
	other := NewJWTManager("test-access-secret", "test-refresh-secret", "someone-else", time.Hour, 168*time.Hour)
	m := newTestManager()

	token, _, err := other.GenerateAccessToken("user-1")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsTampering(t *testing.T) {
	m := newTestManager()

	token, _, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token + "x")
	assert.Error(t, err)
}
