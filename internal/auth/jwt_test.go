package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/config"
)

func newManager() *TokenManager {
	return NewTokenManager(&config.Config{JWTSecret: "secret", JWTTTL: time.Minute})
}

func TestIssueAndParse(t *testing.T) {
	m := newManager()

	token, err := m.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), userID)
}

func TestIssueUniqueTokens(t *testing.T) {
	m := newManager()

	a, err := m.Issue(1)
	require.NoError(t, err)
	b, err := m.Issue(1)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestParseRejects(t *testing.T) {
	m := newManager()

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other secret", func(t *testing.T) {
		other := NewTokenManager(&config.Config{JWTSecret: "other", JWTTTL: time.Minute})
		token, err := other.Issue(1)
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := m.Issue(1)
		require.NoError(t, err)

		later := newManager()
		later.now = func() time.Time { return time.Now().Add(time.Hour) }
		_, err = later.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("non numeric subject", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
