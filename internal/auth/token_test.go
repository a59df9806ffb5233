package auth_test

import (
	"testing"
	"time"

	"github.com/Ranjan7481/Ecommerce/internal/auth"
	"github.com/Ranjan7481/Ecommerce/internal/cfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(secret string, ttl time.Duration) *auth.TokenManager {
	return auth.NewTokenManager(&cfg.AuthCfg{JWTSecret: secret, SessionTTL: ttl})
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	m := newManager("secret", time.Hour)

	token, err := m.Issue(42, "ivan@example.com", "user")
	require.NoError(t, err)

	userID, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokenWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := newManager("secret", time.Hour).Issue(42, "ivan@example.com", "user")
	require.NoError(t, err)

	_, err = newManager("other", time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	t.Parallel()

	m := newManager("secret", -time.Minute)

	token, err := m.Issue(42, "ivan@example.com", "user")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	t.Parallel()

	_, err := newManager("secret", time.Hour).Parse("not.a.token")
	assert.Error(t, err)
}

func TestPasswordHasher(t *testing.T) {
	t.Parallel()

	h := auth.NewBcryptHasher()

	hash, err := h.Hash("Str0ng!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!pass", hash)

	assert.NoError(t, h.Compare(hash, "Str0ng!pass"))
	assert.Error(t, h.Compare(hash, "Wr0ng!pass"))
}
